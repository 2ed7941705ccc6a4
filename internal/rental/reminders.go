// Package rental implements rental lifecycle and due-date reminder policy.
package rental

import (
	"time"

	"github.com/shopspring/decimal"

	"billmitra/internal/domain"
)

// sameDate compares calendar dates ignoring the time of day.
func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SelectOverdue returns rentals whose expected return date is strictly
// before today.
func SelectOverdue(rentals []domain.Rental, today time.Time) []domain.Rental {
	var out []domain.Rental
	for i := range rentals {
		if startOfDay(rentals[i].ExpectedReturnDate).Before(startOfDay(today)) {
			out = append(out, rentals[i])
		}
	}
	return out
}

// SelectDueToday returns rentals whose expected return date is today.
func SelectDueToday(rentals []domain.Rental, today time.Time) []domain.Rental {
	var out []domain.Rental
	for i := range rentals {
		if sameDate(rentals[i].ExpectedReturnDate, today) {
			out = append(out, rentals[i])
		}
	}
	return out
}

// DaysOverdue returns how many whole or partial days past the expected
// return date today is: ceil((today − expectedReturn) / 1 day), floored at 0.
func DaysOverdue(expectedReturn, today time.Time) int {
	diff := today.Sub(expectedReturn)
	if diff <= 0 {
		return 0
	}
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// LateFees returns daysOverdue × lateFeePerDay.
func LateFees(daysOverdue int, lateFeePerDay decimal.Decimal) decimal.Decimal {
	return lateFeePerDay.Mul(decimal.NewFromInt(int64(daysOverdue)))
}
