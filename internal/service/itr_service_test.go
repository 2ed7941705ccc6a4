package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billmitra/internal/domain"
	. "billmitra/internal/service"
	"billmitra/mocks"
)

func TestITRCompute_NewRegime(t *testing.T) {
	repo := new(mocks.MockITRRepo)
	tenantID := uuid.New()
	userID := uuid.New()

	repo.On("GetByUserAndYear", mock.Anything, tenantID, userID, "2024-25").
		Return(nil, domain.ErrNotFound)
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.ITRComputation")).Return(nil)

	svc := NewITRService(repo)
	comp, err := svc.Compute(context.Background(), tenantID, userID, ComputeITRInput{
		FinancialYear: "2024-25",
		Regime:        domain.RegimeNew,
		GrossReceipts: decimal.NewFromInt(1600000),
		TotalExpenses: decimal.Zero,
	})
	require.NoError(t, err)

	// Taxable 16,00,000: slab tax 1,70,000 new regime, no rebate above
	// threshold, cess 4%.
	assert.True(t, comp.TaxableIncome.Equal(decimal.NewFromInt(1600000)), "taxable %s", comp.TaxableIncome)
	assert.True(t, comp.TaxComputed.Equal(decimal.NewFromInt(170000)), "tax %s", comp.TaxComputed)
	assert.True(t, comp.Rebate.IsZero())
	assert.True(t, comp.Cess.Equal(decimal.NewFromInt(6800)), "cess %s", comp.Cess)
	assert.True(t, comp.TotalTaxLiability.Equal(decimal.NewFromInt(176800)), "liability %s", comp.TotalTaxLiability)
	assert.True(t, comp.TaxPayable.Equal(decimal.NewFromInt(176800)))
	assert.True(t, comp.RefundDue.IsZero())

	repo.AssertExpectations(t)
}

func TestITRCompute_RebateWipesTax(t *testing.T) {
	repo := new(mocks.MockITRRepo)
	tenantID := uuid.New()
	userID := uuid.New()

	repo.On("GetByUserAndYear", mock.Anything, tenantID, userID, "2024-25").
		Return(nil, domain.ErrNotFound)
	repo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	svc := NewITRService(repo)
	// New regime, taxable 6,00,000: slab tax 15,000 ≤ 12,500? No: rebate caps
	// at 12,500, leaving 2,500 + cess. Use 5,50,000 instead: tax 12,500,
	// fully wiped by 87A.
	comp, err := svc.Compute(context.Background(), tenantID, userID, ComputeITRInput{
		FinancialYear: "2024-25",
		Regime:        domain.RegimeNew,
		GrossReceipts: decimal.NewFromInt(550000),
	})
	require.NoError(t, err)

	assert.True(t, comp.TaxComputed.Equal(decimal.NewFromInt(12500)), "tax %s", comp.TaxComputed)
	assert.True(t, comp.Rebate.Equal(decimal.NewFromInt(12500)), "rebate %s", comp.Rebate)
	assert.True(t, comp.Cess.IsZero())
	assert.True(t, comp.TotalTaxLiability.IsZero())
	assert.True(t, comp.TaxPayable.IsZero())
}

func TestITRCompute_Presumptive(t *testing.T) {
	repo := new(mocks.MockITRRepo)
	tenantID := uuid.New()
	userID := uuid.New()

	repo.On("GetByUserAndYear", mock.Anything, tenantID, userID, "2024-25").
		Return(nil, domain.ErrNotFound)
	repo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	svc := NewITRService(repo)
	comp, err := svc.Compute(context.Background(), tenantID, userID, ComputeITRInput{
		FinancialYear: "2024-25",
		Regime:        domain.RegimeNew,
		GrossReceipts: decimal.NewFromInt(2000000),
		TotalExpenses: decimal.NewFromInt(1900000), // ignored under presumptive
		Presumptive:   true,
	})
	require.NoError(t, err)
	assert.True(t, comp.TaxableIncome.Equal(decimal.NewFromInt(1000000)), "taxable %s", comp.TaxableIncome)
}

func TestITRCompute_PresumptiveOverLimit(t *testing.T) {
	repo := new(mocks.MockITRRepo)

	svc := NewITRService(repo)
	_, err := svc.Compute(context.Background(), uuid.New(), uuid.New(), ComputeITRInput{
		FinancialYear: "2024-25",
		Regime:        domain.RegimeNew,
		GrossReceipts: decimal.NewFromInt(5000001),
		Presumptive:   true,
	})
	assert.ErrorIs(t, err, domain.ErrThresholdExceeded)
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestITRCompute_RecomputeKeepsIdentity(t *testing.T) {
	repo := new(mocks.MockITRRepo)
	tenantID := uuid.New()
	userID := uuid.New()
	existingID := uuid.New()

	repo.On("GetByUserAndYear", mock.Anything, tenantID, userID, "2024-25").
		Return(&domain.ITRComputation{ID: existingID, FinancialYear: "2024-25"}, nil)
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(c *domain.ITRComputation) bool {
		return c.ID == existingID && c.FinancialYear == "2024-25"
	})).Return(nil)

	svc := NewITRService(repo)
	comp, err := svc.Compute(context.Background(), tenantID, userID, ComputeITRInput{
		FinancialYear: "2024-25",
		Regime:        domain.RegimeOld,
		GrossReceipts: decimal.NewFromInt(600000),
	})
	require.NoError(t, err)
	assert.Equal(t, existingID, comp.ID)

	repo.AssertExpectations(t)
}

func TestITRCompute_BadFinancialYear(t *testing.T) {
	repo := new(mocks.MockITRRepo)

	svc := NewITRService(repo)
	for _, fy := range []string{"", "2024", "24-25", "2024/25", "FY2024-25"} {
		_, err := svc.Compute(context.Background(), uuid.New(), uuid.New(), ComputeITRInput{
			FinancialYear: fy,
			Regime:        domain.RegimeNew,
			GrossReceipts: decimal.NewFromInt(100000),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "fy %q", fy)
	}
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestITRCompute_TaxPaidProducesRefund(t *testing.T) {
	repo := new(mocks.MockITRRepo)
	tenantID := uuid.New()
	userID := uuid.New()

	repo.On("GetByUserAndYear", mock.Anything, tenantID, userID, "2024-25").
		Return(nil, domain.ErrNotFound)
	repo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	svc := NewITRService(repo)
	comp, err := svc.Compute(context.Background(), tenantID, userID, ComputeITRInput{
		FinancialYear: "2024-25",
		Regime:        domain.RegimeNew,
		GrossReceipts: decimal.NewFromInt(550000),
		TaxPaid:       decimal.NewFromInt(5000),
	})
	require.NoError(t, err)
	assert.True(t, comp.TaxPayable.IsZero())
	assert.True(t, comp.RefundDue.Equal(decimal.NewFromInt(5000)), "refund %s", comp.RefundDue)
}
