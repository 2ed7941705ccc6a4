// Package gst computes per-line and per-document GST breakdowns.
//
// All monetary outputs are rounded half-up to 2 decimal places. Rounding is
// applied per published value (taxable value, then each tax head), so a
// line's displayed figures always reconcile with themselves.
package gst

import (
	"github.com/shopspring/decimal"

	"billmitra/internal/domain"
)

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
)

// round2 rounds half away from zero to 2 decimal places. Inputs here are
// non-negative, so this is round-half-up.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func validateLine(item domain.LineItem) error {
	switch {
	case item.Quantity.IsNegative(),
		item.UnitPrice.IsNegative(),
		item.TaxRatePercent.IsNegative(),
		item.TaxRatePercent.GreaterThan(hundred),
		item.DiscountPercent.IsNegative(),
		item.DiscountPercent.GreaterThan(hundred):
		return domain.ErrInvalidInput
	}
	return nil
}

// TaxableValue returns quantity × unitPrice × (1 − discount%/100), rounded.
func TaxableValue(item domain.LineItem) (decimal.Decimal, error) {
	if err := validateLine(item); err != nil {
		return decimal.Zero, err
	}
	gross := item.Quantity.Mul(item.UnitPrice)
	discount := gross.Mul(item.DiscountPercent).Div(hundred)
	return round2(gross.Sub(discount)), nil
}

// LineBreakdown computes the tax split for a single line. A zero tax rate
// yields an all-zero breakdown, which is valid (exempt goods).
func LineBreakdown(item domain.LineItem, interstate bool) (domain.TaxBreakdown, error) {
	taxable, err := TaxableValue(item)
	if err != nil {
		return domain.TaxBreakdown{}, err
	}

	tax := round2(taxable.Mul(item.TaxRatePercent).Div(hundred))

	b := domain.TaxBreakdown{
		TaxableValue: taxable,
		CGST:         decimal.Zero,
		SGST:         decimal.Zero,
		IGST:         decimal.Zero,
	}
	if interstate {
		b.IGST = tax
		return b, nil
	}
	half := round2(tax.Div(two))
	b.CGST = half
	b.SGST = half
	return b, nil
}

// DocumentBreakdown sums per-line breakdowns into document totals. Each line
// is rounded before summing so the totals match the printed line amounts.
func DocumentBreakdown(items []domain.LineItem, interstate bool) (domain.TaxBreakdown, error) {
	total := domain.TaxBreakdown{
		TaxableValue: decimal.Zero,
		CGST:         decimal.Zero,
		SGST:         decimal.Zero,
		IGST:         decimal.Zero,
	}
	for i := range items {
		line, err := LineBreakdown(items[i], interstate)
		if err != nil {
			return domain.TaxBreakdown{}, err
		}
		total.TaxableValue = total.TaxableValue.Add(line.TaxableValue)
		total.CGST = total.CGST.Add(line.CGST)
		total.SGST = total.SGST.Add(line.SGST)
		total.IGST = total.IGST.Add(line.IGST)
	}
	return total, nil
}
