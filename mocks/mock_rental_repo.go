package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"billmitra/internal/domain"
	"billmitra/internal/port"
)

// MockRentalRepo is a mock implementation of port.RentalRepository.
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}

func (m *MockRentalRepo) GetByID(ctx context.Context, tenantID, rentalID uuid.UUID) (*domain.Rental, error) {
	args := m.Called(ctx, tenantID, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalRepo) ListByStatus(ctx context.Context, tenantID uuid.UUID, status domain.RentalStatus) ([]domain.Rental, error) {
	args := m.Called(ctx, tenantID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

func (m *MockRentalRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Rental, int, error) {
	args := m.Called(ctx, tenantID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Rental), args.Int(1), args.Error(2)
}

func (m *MockRentalRepo) Update(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}

// MockPartyRepo is a mock implementation of port.PartyRepository.
type MockPartyRepo struct {
	mock.Mock
}

func (m *MockPartyRepo) Create(ctx context.Context, party *domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyRepo) GetByID(ctx context.Context, tenantID, partyID uuid.UUID) (*domain.Party, error) {
	args := m.Called(ctx, tenantID, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, partyType domain.PartyType, offset, limit int) ([]domain.Party, int, error) {
	args := m.Called(ctx, tenantID, partyType, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Party), args.Int(1), args.Error(2)
}

func (m *MockPartyRepo) Update(ctx context.Context, party *domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyRepo) Delete(ctx context.Context, tenantID, partyID uuid.UUID) error {
	args := m.Called(ctx, tenantID, partyID)
	return args.Error(0)
}

// MockNotifier is a mock implementation of port.Notifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, email port.ReminderEmail) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}
