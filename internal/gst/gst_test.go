package gst_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billmitra/internal/domain"
	"billmitra/internal/gst"
)

func line(qty, price, discount, rate string) domain.LineItem {
	return domain.LineItem{
		Quantity:        decimal.RequireFromString(qty),
		UnitPrice:       decimal.RequireFromString(price),
		DiscountPercent: decimal.RequireFromString(discount),
		TaxRatePercent:  decimal.RequireFromString(rate),
	}
}

func TestLineBreakdown_Intrastate(t *testing.T) {
	// qty=2, price=100, 18% → taxable=200, tax=36, cgst=sgst=18
	b, err := gst.LineBreakdown(line("2", "100", "0", "18"), false)
	require.NoError(t, err)

	assert.True(t, b.TaxableValue.Equal(decimal.RequireFromString("200")), "taxable %s", b.TaxableValue)
	assert.True(t, b.CGST.Equal(decimal.RequireFromString("18")), "cgst %s", b.CGST)
	assert.True(t, b.SGST.Equal(decimal.RequireFromString("18")), "sgst %s", b.SGST)
	assert.True(t, b.IGST.IsZero(), "igst %s", b.IGST)
}

func TestLineBreakdown_Interstate(t *testing.T) {
	b, err := gst.LineBreakdown(line("2", "100", "0", "18"), true)
	require.NoError(t, err)

	assert.True(t, b.CGST.IsZero())
	assert.True(t, b.SGST.IsZero())
	assert.True(t, b.IGST.Equal(decimal.RequireFromString("36")))
	assert.True(t, b.IGST.Equal(b.TotalTax()))
}

func TestLineBreakdown_Discount(t *testing.T) {
	// 10 × 100 with 25% discount → taxable 750; 12% → tax 90, split 45/45
	b, err := gst.LineBreakdown(line("10", "100", "25", "12"), false)
	require.NoError(t, err)

	assert.True(t, b.TaxableValue.Equal(decimal.RequireFromString("750")))
	assert.True(t, b.CGST.Equal(decimal.RequireFromString("45")))
	assert.True(t, b.SGST.Equal(decimal.RequireFromString("45")))
}

func TestLineBreakdown_ZeroRate(t *testing.T) {
	b, err := gst.LineBreakdown(line("3", "50", "0", "0"), false)
	require.NoError(t, err)

	assert.True(t, b.TaxableValue.Equal(decimal.RequireFromString("150")))
	assert.True(t, b.CGST.IsZero())
	assert.True(t, b.SGST.IsZero())
	assert.True(t, b.IGST.IsZero())
}

func TestLineBreakdown_Rounding(t *testing.T) {
	// 1 × 33.33 at 18% → tax 5.9994 → 6.00; halves 3.00/3.00
	b, err := gst.LineBreakdown(line("1", "33.33", "0", "18"), false)
	require.NoError(t, err)

	assert.True(t, b.TotalTax().Equal(decimal.NewFromInt(6)))
	assert.True(t, b.CGST.Equal(decimal.NewFromInt(3)))

	// 1 × 47.61 at 5% → tax 2.3805 → 2.38 (half-up); halves 1.19
	b, err = gst.LineBreakdown(line("1", "47.61", "0", "5"), false)
	require.NoError(t, err)
	assert.True(t, b.TotalTax().Equal(decimal.RequireFromString("2.38")))
	assert.True(t, b.CGST.Equal(decimal.RequireFromString("1.19")))
}

func TestLineBreakdown_InvalidInput(t *testing.T) {
	cases := map[string]domain.LineItem{
		"negative_quantity": line("-1", "100", "0", "18"),
		"negative_price":    line("1", "-100", "0", "18"),
		"negative_rate":     line("1", "100", "0", "-5"),
		"rate_over_100":     line("1", "100", "0", "101"),
		"negative_discount": line("1", "100", "-10", "18"),
		"discount_over_100": line("1", "100", "150", "18"),
	}
	for name, item := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := gst.LineBreakdown(item, false)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestDocumentBreakdown(t *testing.T) {
	items := []domain.LineItem{
		line("2", "100", "0", "18"), // taxable 200, tax 36
		line("1", "500", "10", "5"), // taxable 450, tax 22.50
	}

	doc, err := gst.DocumentBreakdown(items, false)
	require.NoError(t, err)

	assert.True(t, doc.TaxableValue.Equal(decimal.RequireFromString("650")))
	assert.True(t, doc.CGST.Equal(decimal.RequireFromString("29.25")))
	assert.True(t, doc.SGST.Equal(decimal.RequireFromString("29.25")))
	assert.True(t, doc.IGST.IsZero())
}

func TestDocumentBreakdown_FailsWholeDocument(t *testing.T) {
	items := []domain.LineItem{
		line("2", "100", "0", "18"),
		line("-1", "100", "0", "18"),
	}
	_, err := gst.DocumentBreakdown(items, false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDocumentBreakdown_Empty(t *testing.T) {
	doc, err := gst.DocumentBreakdown(nil, true)
	require.NoError(t, err)
	assert.True(t, doc.TaxableValue.IsZero())
	assert.True(t, doc.TotalTax().IsZero())
}
