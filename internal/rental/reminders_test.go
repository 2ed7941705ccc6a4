package rental_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"billmitra/internal/domain"
	"billmitra/internal/rental"
)

var today = time.Date(2025, 7, 14, 9, 0, 0, 0, time.UTC)

func rentalDue(back time.Time) domain.Rental {
	return domain.Rental{
		ItemName:           "projector",
		ExpectedReturnDate: back,
		Status:             domain.RentalActive,
	}
}

func TestSelectOverdue(t *testing.T) {
	rentals := []domain.Rental{
		rentalDue(today.AddDate(0, 0, -3)),
		rentalDue(today.AddDate(0, 0, -1)),
		rentalDue(today),
		rentalDue(today.AddDate(0, 0, 2)),
	}

	got := rental.SelectOverdue(rentals, today)
	assert.Len(t, got, 2)
}

func TestSelectOverdue_IgnoresTimeOfDay(t *testing.T) {
	// Due earlier the same day is not overdue yet.
	dueEarlierToday := time.Date(2025, 7, 14, 6, 0, 0, 0, time.UTC)
	got := rental.SelectOverdue([]domain.Rental{rentalDue(dueEarlierToday)}, today)
	assert.Empty(t, got)
}

func TestSelectDueToday(t *testing.T) {
	rentals := []domain.Rental{
		rentalDue(today.AddDate(0, 0, -1)),
		rentalDue(time.Date(2025, 7, 14, 18, 0, 0, 0, time.UTC)),
		rentalDue(today.AddDate(0, 0, 1)),
	}

	got := rental.SelectDueToday(rentals, today)
	assert.Len(t, got, 1)
}

func TestDaysOverdue(t *testing.T) {
	assert.Equal(t, 0, rental.DaysOverdue(today, today))
	assert.Equal(t, 0, rental.DaysOverdue(today.AddDate(0, 0, 5), today))
	assert.Equal(t, 1, rental.DaysOverdue(today.Add(-1*time.Hour), today))
	assert.Equal(t, 1, rental.DaysOverdue(today.AddDate(0, 0, -1), today))
	assert.Equal(t, 2, rental.DaysOverdue(today.AddDate(0, 0, -1).Add(-1*time.Hour), today))
	assert.Equal(t, 7, rental.DaysOverdue(today.AddDate(0, 0, -7), today))
}

func TestLateFees(t *testing.T) {
	fee := decimal.RequireFromString("150.50")
	assert.True(t, rental.LateFees(0, fee).IsZero())
	assert.True(t, rental.LateFees(3, fee).Equal(decimal.RequireFromString("451.50")))
}
