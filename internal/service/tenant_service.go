package service

import (
	"context"

	"github.com/google/uuid"

	"billmitra/internal/domain"
	"billmitra/internal/port"
)

// UpdateTenantInput is the DTO for updating a tenant.
type UpdateTenantInput struct {
	Name      *string          `json:"name"`
	Industry  *domain.Industry `json:"industry"`
	StateCode *string          `json:"state_code"`
	GSTIN     *string          `json:"gstin"`
	IsActive  *bool            `json:"is_active"`
}

// TenantService defines the tenant management contract. Tenant creation
// happens through AuthService.Register; this service covers the rest of the
// lifecycle.
type TenantService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	List(ctx context.Context, offset, limit int) ([]domain.Tenant, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateTenantInput) (*domain.Tenant, error)
	Features(ctx context.Context, id uuid.UUID) (*domain.IndustryConfig, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type tenantService struct {
	repo       port.TenantRepository
	industries port.IndustryConfigRepository
}

// NewTenantService creates a new TenantService implementation.
func NewTenantService(repo port.TenantRepository, industries port.IndustryConfigRepository) TenantService {
	return &tenantService{repo: repo, industries: industries}
}

func (s *tenantService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *tenantService) List(ctx context.Context, offset, limit int) ([]domain.Tenant, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *tenantService) Update(ctx context.Context, id uuid.UUID, input UpdateTenantInput) (*domain.Tenant, error) {
	tenant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		tenant.Name = *input.Name
	}
	if input.Industry != nil {
		tenant.Industry = *input.Industry
	}
	if input.StateCode != nil {
		tenant.StateCode = *input.StateCode
	}
	if input.GSTIN != nil {
		tenant.GSTIN = *input.GSTIN
	}
	if input.IsActive != nil {
		tenant.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

// Features resolves the feature flags for the tenant's industry. The flags
// decide which app sections the frontend shows.
func (s *tenantService) Features(ctx context.Context, id uuid.UUID) (*domain.IndustryConfig, error) {
	tenant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.industries.Get(ctx, tenant.Industry)
}

func (s *tenantService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
