package service

import (
	"context"

	"github.com/google/uuid"

	"billmitra/internal/domain"
	"billmitra/internal/port"
)

// CreatePartyInput is the DTO for creating a customer or supplier.
type CreatePartyInput struct {
	Name      string           `json:"name" binding:"required"`
	Type      domain.PartyType `json:"type" binding:"required"`
	GSTIN     string           `json:"gstin"`
	StateCode string           `json:"state_code" binding:"required,len=2"`
	Email     string           `json:"email" binding:"omitempty,email"`
	Phone     string           `json:"phone"`
}

// UpdatePartyInput is the DTO for updating a party.
type UpdatePartyInput struct {
	Name      *string `json:"name"`
	GSTIN     *string `json:"gstin"`
	StateCode *string `json:"state_code"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

// PartyService defines the customer/supplier management contract.
type PartyService interface {
	Create(ctx context.Context, tenantID uuid.UUID, input CreatePartyInput) (*domain.Party, error)
	GetByID(ctx context.Context, tenantID, partyID uuid.UUID) (*domain.Party, error)
	List(ctx context.Context, tenantID uuid.UUID, partyType domain.PartyType, offset, limit int) ([]domain.Party, int, error)
	Update(ctx context.Context, tenantID, partyID uuid.UUID, input UpdatePartyInput) (*domain.Party, error)
	Delete(ctx context.Context, tenantID, partyID uuid.UUID) error
}

type partyService struct {
	repo port.PartyRepository
}

// NewPartyService creates a new PartyService implementation.
func NewPartyService(repo port.PartyRepository) PartyService {
	return &partyService{repo: repo}
}

func (s *partyService) Create(ctx context.Context, tenantID uuid.UUID, input CreatePartyInput) (*domain.Party, error) {
	if input.Type != domain.PartyCustomer && input.Type != domain.PartySupplier {
		return nil, domain.ErrInvalidInput
	}

	party := &domain.Party{
		TenantID:  tenantID,
		Name:      input.Name,
		Type:      input.Type,
		GSTIN:     input.GSTIN,
		StateCode: input.StateCode,
		Email:     input.Email,
		Phone:     input.Phone,
	}
	if err := s.repo.Create(ctx, party); err != nil {
		return nil, err
	}
	return party, nil
}

func (s *partyService) GetByID(ctx context.Context, tenantID, partyID uuid.UUID) (*domain.Party, error) {
	return s.repo.GetByID(ctx, tenantID, partyID)
}

func (s *partyService) List(ctx context.Context, tenantID uuid.UUID, partyType domain.PartyType, offset, limit int) ([]domain.Party, int, error) {
	return s.repo.ListByTenant(ctx, tenantID, partyType, offset, limit)
}

func (s *partyService) Update(ctx context.Context, tenantID, partyID uuid.UUID, input UpdatePartyInput) (*domain.Party, error) {
	party, err := s.repo.GetByID(ctx, tenantID, partyID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		party.Name = *input.Name
	}
	if input.GSTIN != nil {
		party.GSTIN = *input.GSTIN
	}
	if input.StateCode != nil {
		party.StateCode = *input.StateCode
	}
	if input.Email != nil {
		party.Email = *input.Email
	}
	if input.Phone != nil {
		party.Phone = *input.Phone
	}

	if err := s.repo.Update(ctx, party); err != nil {
		return nil, err
	}
	return party, nil
}

func (s *partyService) Delete(ctx context.Context, tenantID, partyID uuid.UUID) error {
	return s.repo.Delete(ctx, tenantID, partyID)
}
