package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"billmitra/internal/domain"
)

// MockEWayBillRepo is a mock implementation of port.EWayBillRepository.
type MockEWayBillRepo struct {
	mock.Mock
}

func (m *MockEWayBillRepo) Create(ctx context.Context, bill *domain.EWayBill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockEWayBillRepo) GetByID(ctx context.Context, tenantID, billID uuid.UUID) (*domain.EWayBill, error) {
	args := m.Called(ctx, tenantID, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EWayBill), args.Error(1)
}

func (m *MockEWayBillRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.EWayBill, int, error) {
	args := m.Called(ctx, tenantID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.EWayBill), args.Int(1), args.Error(2)
}

func (m *MockEWayBillRepo) UpdateStatus(ctx context.Context, bill *domain.EWayBill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}
