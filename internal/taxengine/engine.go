// Package taxengine computes Indian personal income tax: slab walks under
// the old and new regimes, presumptive income under section 44ADA, the
// section 87A rebate, regime comparison and the advance tax schedule.
//
// All functions are deterministic and side-effect free. Money is
// decimal.Decimal; published values are rounded half-up to 2 decimal places.
package taxengine

import (
	"github.com/shopspring/decimal"

	"billmitra/internal/domain"
)

var (
	hundred = decimal.NewFromInt(100)

	cessRate = decimal.RequireFromString("0.04")

	standardDeduction = d(50000)
	section80CCap     = d(150000)

	presumptiveLimit = d(5000000)
	presumptiveRate  = decimal.RequireFromString("0.5")

	rebateCap          = d(12500)
	rebateThresholdOld = d(500000)
	rebateThresholdNew = d(700000)
)

// TaxResult is the output of a slab computation.
type TaxResult struct {
	Tax   decimal.Decimal `json:"tax"`
	Cess  decimal.Decimal `json:"cess"`
	Total decimal.Decimal `json:"total"`
}

// ComputeTax walks the regime's slabs in ascending order, accumulating
// (min(income, slab.max) − slab.min) × rate for each band, then adds 4%
// health and education cess.
func ComputeTax(taxableIncome decimal.Decimal, regime domain.TaxRegime) (TaxResult, error) {
	if taxableIncome.IsNegative() {
		return TaxResult{}, domain.ErrInvalidInput
	}

	tax := decimal.Zero
	for _, slab := range Slabs(regime) {
		upper := taxableIncome
		if slab.Max != nil && slab.Max.LessThan(upper) {
			upper = *slab.Max
		}
		width := upper.Sub(slab.Min)
		if width.IsNegative() {
			continue
		}
		tax = tax.Add(width.Mul(slab.Rate).Div(hundred))
	}

	tax = tax.Round(2)
	cess := tax.Mul(cessRate).Round(2)
	return TaxResult{Tax: tax, Cess: cess, Total: tax.Add(cess)}, nil
}

// PresumptiveIncome returns 50% of gross receipts under section 44ADA.
// Receipts above ₹50,00,000 are outside the presumptive scheme.
func PresumptiveIncome(grossReceipts decimal.Decimal) (decimal.Decimal, error) {
	if grossReceipts.IsNegative() {
		return decimal.Zero, domain.ErrInvalidInput
	}
	if grossReceipts.GreaterThan(presumptiveLimit) {
		return decimal.Zero, domain.ErrThresholdExceeded
	}
	return grossReceipts.Mul(presumptiveRate).Round(2), nil
}

// Deductions are the chapter VI-A amounts claimed under the old regime.
type Deductions struct {
	Section80C decimal.Decimal `json:"section_80c"`
	Other      decimal.Decimal `json:"other"`
}

// RegimeComparison is the result of computing both regimes side by side.
type RegimeComparison struct {
	OldRegime      TaxResult        `json:"old_regime"`
	NewRegime      TaxResult        `json:"new_regime"`
	OldTaxable     decimal.Decimal  `json:"old_taxable"`
	NewTaxable     decimal.Decimal  `json:"new_taxable"`
	Recommendation domain.TaxRegime `json:"recommendation"`
	Savings        decimal.Decimal  `json:"savings"`
}

// CompareRegimes computes tax under both regimes for the same gross income.
// The old regime allows the standard deduction, section 80C up to the cap and
// other deductions; the new regime allows only the standard deduction. The
// recommendation is the strictly lower total; ties favor the new regime.
func CompareRegimes(grossIncome decimal.Decimal, deductions Deductions) (RegimeComparison, error) {
	if grossIncome.IsNegative() || deductions.Section80C.IsNegative() || deductions.Other.IsNegative() {
		return RegimeComparison{}, domain.ErrInvalidInput
	}

	capped80C := decimal.Min(deductions.Section80C, section80CCap)
	oldTaxable := floorZero(grossIncome.Sub(standardDeduction).Sub(capped80C).Sub(deductions.Other))
	newTaxable := floorZero(grossIncome.Sub(standardDeduction))

	oldResult, err := ComputeTax(oldTaxable, domain.RegimeOld)
	if err != nil {
		return RegimeComparison{}, err
	}
	newResult, err := ComputeTax(newTaxable, domain.RegimeNew)
	if err != nil {
		return RegimeComparison{}, err
	}

	recommendation := domain.RegimeNew
	if oldResult.Total.LessThan(newResult.Total) {
		recommendation = domain.RegimeOld
	}

	return RegimeComparison{
		OldRegime:      oldResult,
		NewRegime:      newResult,
		OldTaxable:     oldTaxable,
		NewTaxable:     newTaxable,
		Recommendation: recommendation,
		Savings:        oldResult.Total.Sub(newResult.Total).Abs(),
	}, nil
}

// Rebate87A returns the section 87A rebate: min(tax, ₹12,500) when taxable
// income is within the regime's threshold, zero otherwise.
func Rebate87A(taxableIncome, taxBeforeRebate decimal.Decimal, regime domain.TaxRegime) decimal.Decimal {
	threshold := rebateThresholdNew
	if regime == domain.RegimeOld {
		threshold = rebateThresholdOld
	}
	if taxableIncome.GreaterThan(threshold) {
		return decimal.Zero
	}
	return decimal.Min(taxBeforeRebate, rebateCap)
}

// Installments is the advance tax schedule across the four due dates.
type Installments struct {
	Q1 decimal.Decimal `json:"q1"`
	Q2 decimal.Decimal `json:"q2"`
	Q3 decimal.Decimal `json:"q3"`
	Q4 decimal.Decimal `json:"q4"`
}

// AdvanceTaxInstallments splits a liability across the statutory cumulative
// percentages 15/45/75/100. Each quarter is the marginal amount; Q4 is the
// remainder so the four quarters sum to the liability exactly.
func AdvanceTaxInstallments(totalLiability decimal.Decimal) (Installments, error) {
	if totalLiability.IsNegative() {
		return Installments{}, domain.ErrInvalidInput
	}

	cum15 := totalLiability.Mul(decimal.RequireFromString("0.15")).Round(2)
	cum45 := totalLiability.Mul(decimal.RequireFromString("0.45")).Round(2)
	cum75 := totalLiability.Mul(decimal.RequireFromString("0.75")).Round(2)

	return Installments{
		Q1: cum15,
		Q2: cum45.Sub(cum15),
		Q3: cum75.Sub(cum45),
		Q4: totalLiability.Sub(cum75),
	}, nil
}

func floorZero(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}
