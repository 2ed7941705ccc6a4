package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"billmitra/internal/domain"
)

// InvoiceRepository defines the contract for invoice persistence. Create
// persists the invoice header together with its lines atomically.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice, lines []domain.InvoiceLine) error
	GetByID(ctx context.Context, tenantID, invoiceID uuid.UUID) (*domain.Invoice, error)
	GetLines(ctx context.Context, tenantID, invoiceID uuid.UUID) ([]domain.InvoiceLine, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error)
	ListByParty(ctx context.Context, tenantID, partyID uuid.UUID, from, to time.Time) ([]domain.Invoice, error)
	ListByDateRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]domain.Invoice, error)
	UpdateBalance(ctx context.Context, invoice *domain.Invoice) error
	NextInvoiceNumber(ctx context.Context, tenantID uuid.UUID) (string, error)
}

// PaymentRepository defines the contract for payment persistence.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	ListByParty(ctx context.Context, tenantID, partyID uuid.UUID, from, to time.Time) ([]domain.Payment, error)
	ListByDateRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]domain.Payment, error)
}

// PurchaseRepository defines the contract for purchase persistence.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *domain.Purchase) error
	ListByParty(ctx context.Context, tenantID, partyID uuid.UUID, from, to time.Time) ([]domain.Purchase, error)
	ListByDateRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]domain.Purchase, error)
}

// EWayBillRepository defines the contract for e-way bill persistence.
type EWayBillRepository interface {
	Create(ctx context.Context, bill *domain.EWayBill) error
	GetByID(ctx context.Context, tenantID, billID uuid.UUID) (*domain.EWayBill, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.EWayBill, int, error)
	UpdateStatus(ctx context.Context, bill *domain.EWayBill) error
}

// RentalRepository defines the contract for rental persistence.
type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, tenantID, rentalID uuid.UUID) (*domain.Rental, error)
	ListByStatus(ctx context.Context, tenantID uuid.UUID, status domain.RentalStatus) ([]domain.Rental, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Rental, int, error)
	Update(ctx context.Context, rental *domain.Rental) error
}

// ITRRepository defines the contract for income tax computation persistence.
// Upsert keys on (tenant, user, financial year).
type ITRRepository interface {
	Upsert(ctx context.Context, comp *domain.ITRComputation) error
	GetByUserAndYear(ctx context.Context, tenantID, userID uuid.UUID, financialYear string) (*domain.ITRComputation, error)
	ListByUser(ctx context.Context, tenantID, userID uuid.UUID) ([]domain.ITRComputation, error)
}
