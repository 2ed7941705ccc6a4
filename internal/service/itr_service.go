package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"billmitra/internal/domain"
	"billmitra/internal/port"
	"billmitra/internal/taxengine"
)

var financialYearPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// ComputeITRInput is the DTO for computing an income tax return for one
// financial year, e.g. "2024-25".
type ComputeITRInput struct {
	FinancialYear string           `json:"financial_year" binding:"required"`
	Regime        domain.TaxRegime `json:"regime" binding:"required"`
	GrossReceipts decimal.Decimal  `json:"gross_receipts"`
	TotalExpenses decimal.Decimal  `json:"total_expenses"`
	Deductions    decimal.Decimal  `json:"deductions"`
	Presumptive   bool             `json:"presumptive"`
	TaxPaid       decimal.Decimal  `json:"tax_paid"`
}

// ITRService defines the income tax return computation contract.
type ITRService interface {
	Compute(ctx context.Context, tenantID, userID uuid.UUID, input ComputeITRInput) (*domain.ITRComputation, error)
	CompareRegimes(ctx context.Context, grossIncome decimal.Decimal, deductions taxengine.Deductions) (taxengine.RegimeComparison, error)
	AdvanceTax(ctx context.Context, totalLiability decimal.Decimal) (taxengine.Installments, error)
	GetByYear(ctx context.Context, tenantID, userID uuid.UUID, financialYear string) (*domain.ITRComputation, error)
	ListByUser(ctx context.Context, tenantID, userID uuid.UUID) ([]domain.ITRComputation, error)
}

type itrService struct {
	computations port.ITRRepository
}

// NewITRService creates a new ITRService implementation.
func NewITRService(computations port.ITRRepository) ITRService {
	return &itrService{computations: computations}
}

// Compute derives the full tax position for a financial year and upserts it.
// Recomputing the same year overwrites the stored figures; the financial year
// key itself never changes on an existing row.
func (s *itrService) Compute(ctx context.Context, tenantID, userID uuid.UUID, input ComputeITRInput) (*domain.ITRComputation, error) {
	if !financialYearPattern.MatchString(input.FinancialYear) {
		return nil, domain.ErrInvalidInput
	}
	if input.Regime != domain.RegimeOld && input.Regime != domain.RegimeNew {
		return nil, domain.ErrInvalidInput
	}
	if input.GrossReceipts.IsNegative() || input.TotalExpenses.IsNegative() ||
		input.Deductions.IsNegative() || input.TaxPaid.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	var income decimal.Decimal
	if input.Presumptive {
		presumed, err := taxengine.PresumptiveIncome(input.GrossReceipts)
		if err != nil {
			return nil, err
		}
		income = presumed
	} else {
		income = input.GrossReceipts.Sub(input.TotalExpenses)
		if income.IsNegative() {
			income = decimal.Zero
		}
	}

	// Deductions only reduce old regime income; the deduction amount is
	// stored either way for the record.
	taxable := income
	if input.Regime == domain.RegimeOld {
		taxable = income.Sub(input.Deductions)
		if taxable.IsNegative() {
			taxable = decimal.Zero
		}
	}

	result, err := taxengine.ComputeTax(taxable, input.Regime)
	if err != nil {
		return nil, err
	}
	rebate := taxengine.Rebate87A(taxable, result.Tax, input.Regime)
	taxAfterRebate := result.Tax.Sub(rebate)
	cess := taxAfterRebate.Mul(decimal.RequireFromString("0.04")).Round(2)
	liability := taxAfterRebate.Add(cess)

	comp := &domain.ITRComputation{
		TenantID:          tenantID,
		UserID:            userID,
		FinancialYear:     input.FinancialYear,
		Regime:            input.Regime,
		GrossReceipts:     input.GrossReceipts,
		TotalExpenses:     input.TotalExpenses,
		Deductions:        input.Deductions,
		Presumptive:       input.Presumptive,
		TaxableIncome:     taxable,
		TaxComputed:       result.Tax,
		Rebate:            rebate,
		Cess:              cess,
		TotalTaxLiability: liability,
		TaxPaid:           input.TaxPaid,
		TaxPayable:        decimal.Zero,
		RefundDue:         decimal.Zero,
	}
	balance := liability.Sub(input.TaxPaid)
	if balance.IsPositive() {
		comp.TaxPayable = balance
	} else {
		comp.RefundDue = balance.Neg()
	}

	// Reuse the stored row's identity when the year was computed before.
	existing, err := s.computations.GetByUserAndYear(ctx, tenantID, userID, input.FinancialYear)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("itrService.Compute: %w", err)
	}
	if existing != nil {
		comp.ID = existing.ID
	}

	if err := s.computations.Upsert(ctx, comp); err != nil {
		return nil, fmt.Errorf("itrService.Compute: %w", err)
	}
	return comp, nil
}

func (s *itrService) CompareRegimes(_ context.Context, grossIncome decimal.Decimal, deductions taxengine.Deductions) (taxengine.RegimeComparison, error) {
	return taxengine.CompareRegimes(grossIncome, deductions)
}

func (s *itrService) AdvanceTax(_ context.Context, totalLiability decimal.Decimal) (taxengine.Installments, error) {
	return taxengine.AdvanceTaxInstallments(totalLiability)
}

func (s *itrService) GetByYear(ctx context.Context, tenantID, userID uuid.UUID, financialYear string) (*domain.ITRComputation, error) {
	return s.computations.GetByUserAndYear(ctx, tenantID, userID, financialYear)
}

func (s *itrService) ListByUser(ctx context.Context, tenantID, userID uuid.UUID) ([]domain.ITRComputation, error) {
	return s.computations.ListByUser(ctx, tenantID, userID)
}
