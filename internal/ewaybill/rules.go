// Package ewaybill implements e-way bill eligibility and validity policy and
// the issue/cancel lifecycle.
package ewaybill

import (
	"github.com/shopspring/decimal"

	"billmitra/internal/domain"
)

// threshold above which a consignment requires an e-way bill, in rupees.
var requiredThreshold = decimal.NewFromInt(50000)

// IsRequired reports whether a consignment of the given value needs an
// e-way bill. The threshold is inclusive.
func IsRequired(consignmentValue decimal.Decimal) bool {
	return consignmentValue.GreaterThanOrEqual(requiredThreshold)
}

// IsHSNCode reports whether code is a syntactically valid HSN goods code:
// a numeric string of length 4, 6 or 8. SAC service codes (chapter 99) and
// free-text classifications do not qualify.
func IsHSNCode(code string) bool {
	switch len(code) {
	case 4, 6, 8:
	default:
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	// Chapter 99 is reserved for services (SAC).
	return code[:2] != "99"
}

// HasEligibleGoodsLine reports whether at least one line carries a valid HSN
// code. A consignment of pure services cannot be issued an e-way bill.
func HasEligibleGoodsLine(items []domain.LineItem) bool {
	for i := range items {
		if IsHSNCode(items[i].HSNSACCode) {
			return true
		}
	}
	return false
}

// ValidityDays returns how many days an e-way bill stays valid for the given
// distance: 1 day for the first 100km or fraction thereof, plus 1 day per
// additional 100km or fraction thereof.
func ValidityDays(distanceKm int) int {
	if distanceKm <= 100 {
		return 1
	}
	extra := distanceKm - 100
	return 1 + (extra+99)/100
}
