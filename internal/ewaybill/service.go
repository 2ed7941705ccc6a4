package ewaybill

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"billmitra/internal/domain"
	"billmitra/internal/port"
)

// GenerateInput is the DTO for issuing an e-way bill.
type GenerateInput struct {
	InvoiceID        *uuid.UUID           `json:"invoice_id"`
	ConsignmentValue decimal.Decimal      `json:"consignment_value" binding:"required"`
	Items            []domain.LineItem    `json:"items" binding:"required"`
	DistanceKm       int                  `json:"distance_km" binding:"required"`
	TransportMode    domain.TransportMode `json:"transport_mode" binding:"required"`
}

// Service issues and cancels e-way bills.
type Service interface {
	Generate(ctx context.Context, tenantID uuid.UUID, input GenerateInput) (*domain.EWayBill, error)
	Cancel(ctx context.Context, tenantID, billID uuid.UUID) (*domain.EWayBill, error)
	GetByID(ctx context.Context, tenantID, billID uuid.UUID) (*domain.EWayBill, error)
	List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.EWayBill, int, error)
}

type service struct {
	repo port.EWayBillRepository
	now  func() time.Time
}

// NewService creates a new e-way bill Service implementation.
func NewService(repo port.EWayBillRepository) Service {
	return &service{repo: repo, now: time.Now}
}

// NewServiceWithClock creates a Service with a fixed clock, for tests.
func NewServiceWithClock(repo port.EWayBillRepository, now func() time.Time) Service {
	return &service{repo: repo, now: now}
}

func (s *service) Generate(ctx context.Context, tenantID uuid.UUID, input GenerateInput) (*domain.EWayBill, error) {
	if input.ConsignmentValue.IsNegative() || input.DistanceKm <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if !IsRequired(input.ConsignmentValue) {
		return nil, domain.ErrIneligibleConsignment
	}
	if !HasEligibleGoodsLine(input.Items) {
		return nil, domain.ErrServicesOnly
	}

	issuedAt := s.now().UTC()
	days := ValidityDays(input.DistanceKm)

	bill := &domain.EWayBill{
		TenantID:         tenantID,
		InvoiceID:        input.InvoiceID,
		BillNumber:       newBillNumber(),
		ConsignmentValue: input.ConsignmentValue,
		DistanceKm:       input.DistanceKm,
		TransportMode:    input.TransportMode,
		Status:           domain.EWayBillGenerated,
		IssuedAt:         issuedAt,
		ValidUntil:       issuedAt.AddDate(0, 0, days),
	}
	if err := s.repo.Create(ctx, bill); err != nil {
		return nil, fmt.Errorf("ewaybill.Generate: %w", err)
	}
	return bill, nil
}

func (s *service) Cancel(ctx context.Context, tenantID, billID uuid.UUID) (*domain.EWayBill, error) {
	bill, err := s.repo.GetByID(ctx, tenantID, billID)
	if err != nil {
		return nil, err
	}
	if bill.Status == domain.EWayBillCancelled {
		return nil, domain.ErrAlreadyCancelled
	}

	now := s.now().UTC()
	bill.Status = domain.EWayBillCancelled
	bill.CancelledAt = &now
	if err := s.repo.UpdateStatus(ctx, bill); err != nil {
		return nil, fmt.Errorf("ewaybill.Cancel: %w", err)
	}
	return bill, nil
}

func (s *service) GetByID(ctx context.Context, tenantID, billID uuid.UUID) (*domain.EWayBill, error) {
	return s.repo.GetByID(ctx, tenantID, billID)
}

func (s *service) List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.EWayBill, int, error) {
	return s.repo.ListByTenant(ctx, tenantID, offset, limit)
}

// newBillNumber allocates a 12-digit bill number from random UUID bytes.
// Uniqueness is the only hard requirement; the unique index on bill_number
// is the backstop.
func newBillNumber() string {
	id := uuid.New()
	n := binary.BigEndian.Uint64(id[:8]) % 1_000_000_000_000
	return fmt.Sprintf("%012d", n)
}
