package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"billmitra/internal/domain"
	"billmitra/internal/port"
)

// CreatePurchaseInput carries the fields to record a purchase voucher or a
// payment made against a supplier.
type CreatePurchaseInput struct {
	PartyID       uuid.UUID       `json:"party_id" binding:"required"`
	VoucherNumber string          `json:"voucher_number" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PurchaseDate  time.Time       `json:"purchase_date" binding:"required"`
	IsPayment     bool            `json:"is_payment"`
}

// PurchaseService records purchase-side vouchers that feed the ledgers.
type PurchaseService interface {
	Create(ctx context.Context, tenantID uuid.UUID, input CreatePurchaseInput) (*domain.Purchase, error)
	ListByDateRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]domain.Purchase, error)
}

type purchaseService struct {
	purchases port.PurchaseRepository
	parties   port.PartyRepository
}

// NewPurchaseService creates a new PurchaseService implementation.
func NewPurchaseService(purchases port.PurchaseRepository, parties port.PartyRepository) PurchaseService {
	return &purchaseService{purchases: purchases, parties: parties}
}

func (s *purchaseService) Create(ctx context.Context, tenantID uuid.UUID, input CreatePurchaseInput) (*domain.Purchase, error) {
	if !input.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if _, err := s.parties.GetByID(ctx, tenantID, input.PartyID); err != nil {
		return nil, fmt.Errorf("purchaseService.Create: %w", err)
	}

	purchase := &domain.Purchase{
		TenantID:      tenantID,
		PartyID:       input.PartyID,
		VoucherNumber: input.VoucherNumber,
		Amount:        input.Amount,
		PurchaseDate:  input.PurchaseDate,
		IsPayment:     input.IsPayment,
	}
	if err := s.purchases.Create(ctx, purchase); err != nil {
		return nil, fmt.Errorf("purchaseService.Create: %w", err)
	}
	return purchase, nil
}

func (s *purchaseService) ListByDateRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]domain.Purchase, error) {
	purchases, err := s.purchases.ListByDateRange(ctx, tenantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("purchaseService.ListByDateRange: %w", err)
	}
	return purchases, nil
}
