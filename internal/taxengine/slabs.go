package taxengine

import (
	"github.com/shopspring/decimal"

	"billmitra/internal/domain"
)

// Slab is one band of the income tax table. Max is nil for the open-ended
// top band. Slabs are ascending, non-overlapping and cover [0, ∞).
type Slab struct {
	Min  decimal.Decimal
	Max  *decimal.Decimal
	Rate decimal.Decimal
}

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func dp(v int64) *decimal.Decimal {
	x := decimal.NewFromInt(v)
	return &x
}

// Policy constants for FY 2024-25. These are statute values, not derived.
var (
	oldRegimeSlabs = []Slab{
		{Min: d(0), Max: dp(250000), Rate: d(0)},
		{Min: d(250000), Max: dp(500000), Rate: d(5)},
		{Min: d(500000), Max: dp(1000000), Rate: d(20)},
		{Min: d(1000000), Max: nil, Rate: d(30)},
	}

	newRegimeSlabs = []Slab{
		{Min: d(0), Max: dp(300000), Rate: d(0)},
		{Min: d(300000), Max: dp(700000), Rate: d(5)},
		{Min: d(700000), Max: dp(1000000), Rate: d(10)},
		{Min: d(1000000), Max: dp(1200000), Rate: d(15)},
		{Min: d(1200000), Max: dp(1500000), Rate: d(20)},
		{Min: d(1500000), Max: nil, Rate: d(30)},
	}
)

// Slabs returns the slab table for a regime. The returned slice must not be
// mutated.
func Slabs(regime domain.TaxRegime) []Slab {
	if regime == domain.RegimeOld {
		return oldRegimeSlabs
	}
	return newRegimeSlabs
}
