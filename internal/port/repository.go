package port

import (
	"context"

	"github.com/google/uuid"

	"billmitra/internal/domain"
)

// TenantRepository defines the contract for tenant persistence.
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	List(ctx context.Context, offset, limit int) ([]domain.Tenant, int, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserRepository defines the contract for user persistence.
// All query methods include tenantID to enforce tenant isolation at the data layer.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, tenantID, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*domain.User, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, tenantID, userID uuid.UUID) error
}

// PartyRepository defines the contract for customer/supplier persistence.
type PartyRepository interface {
	Create(ctx context.Context, party *domain.Party) error
	GetByID(ctx context.Context, tenantID, partyID uuid.UUID) (*domain.Party, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, partyType domain.PartyType, offset, limit int) ([]domain.Party, int, error)
	Update(ctx context.Context, party *domain.Party) error
	Delete(ctx context.Context, tenantID, partyID uuid.UUID) error
}

// ProductRepository defines the contract for product persistence.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, tenantID, productID uuid.UUID) (*domain.Product, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Product, int, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, tenantID, productID uuid.UUID) error
}

// IndustryConfigRepository loads the industry feature-flag table.
type IndustryConfigRepository interface {
	Get(ctx context.Context, industry domain.Industry) (*domain.IndustryConfig, error)
	List(ctx context.Context) ([]domain.IndustryConfig, error)
}
