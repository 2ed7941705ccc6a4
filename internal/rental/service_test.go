package rental_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billmitra/internal/domain"
	"billmitra/internal/port"
	"billmitra/internal/rental"
	"billmitra/mocks"
)

type rentalFixtures struct {
	rentals  *mocks.MockRentalRepo
	parties  *mocks.MockPartyRepo
	notifier *mocks.MockNotifier
	svc      rental.Service
}

func setup() *rentalFixtures {
	f := &rentalFixtures{
		rentals:  new(mocks.MockRentalRepo),
		parties:  new(mocks.MockPartyRepo),
		notifier: new(mocks.MockNotifier),
	}
	f.svc = rental.NewServiceWithClock(f.rentals, f.parties, f.notifier, func() time.Time { return today })
	return f
}

func activeRental(tenantID uuid.UUID, back time.Time, feePerDay string) domain.Rental {
	return domain.Rental{
		ID:                 uuid.New(),
		TenantID:           tenantID,
		PartyID:            uuid.New(),
		ItemName:           "projector",
		RatePerDay:         decimal.RequireFromString("500"),
		LateFeePerDay:      decimal.RequireFromString(feePerDay),
		StartDate:          back.AddDate(0, 0, -7),
		ExpectedReturnDate: back,
		Status:             domain.RentalActive,
	}
}

func TestReturn_OnTime(t *testing.T) {
	f := setup()
	tenantID := uuid.New()
	r := activeRental(tenantID, today.AddDate(0, 0, 2), "100")

	f.rentals.On("GetByID", mock.Anything, tenantID, r.ID).Return(&r, nil)
	f.rentals.On("Update", mock.Anything, mock.AnythingOfType("*domain.Rental")).Return(nil)

	got, err := f.svc.Return(context.Background(), tenantID, r.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RentalReturned, got.Status)
	assert.True(t, got.LateFees.IsZero())
	require.NotNil(t, got.ReturnedAt)
}

func TestReturn_Late(t *testing.T) {
	f := setup()
	tenantID := uuid.New()
	r := activeRental(tenantID, today.AddDate(0, 0, -3), "100")

	f.rentals.On("GetByID", mock.Anything, tenantID, r.ID).Return(&r, nil)
	f.rentals.On("Update", mock.Anything, mock.AnythingOfType("*domain.Rental")).Return(nil)

	got, err := f.svc.Return(context.Background(), tenantID, r.ID)
	require.NoError(t, err)
	assert.True(t, got.LateFees.Equal(decimal.RequireFromString("300")), "fees %s", got.LateFees)
}

func TestReturn_AlreadyReturned(t *testing.T) {
	f := setup()
	tenantID := uuid.New()
	r := activeRental(tenantID, today, "100")
	r.Status = domain.RentalReturned

	f.rentals.On("GetByID", mock.Anything, tenantID, r.ID).Return(&r, nil)

	_, err := f.svc.Return(context.Background(), tenantID, r.ID)
	assert.ErrorIs(t, err, domain.ErrRentalReturned)
}

func TestSendReminders_Overdue(t *testing.T) {
	f := setup()
	tenantID := uuid.New()
	overdueRental := activeRental(tenantID, today.AddDate(0, 0, -2), "100")
	onTime := activeRental(tenantID, today.AddDate(0, 0, 5), "100")
	party := &domain.Party{ID: overdueRental.PartyID, Name: "Sharma Traders", Email: "accounts@sharma.example"}

	f.rentals.On("ListByStatus", mock.Anything, tenantID, domain.RentalActive).
		Return([]domain.Rental{overdueRental, onTime}, nil)
	f.rentals.On("ListByStatus", mock.Anything, tenantID, domain.RentalOverdue).
		Return([]domain.Rental{}, nil)
	f.rentals.On("Update", mock.Anything, mock.MatchedBy(func(r *domain.Rental) bool {
		return r.ID == overdueRental.ID && r.Status == domain.RentalOverdue
	})).Return(nil)
	f.parties.On("GetByID", mock.Anything, tenantID, overdueRental.PartyID).Return(party, nil)
	f.notifier.On("Send", mock.Anything, mock.MatchedBy(func(e port.ReminderEmail) bool {
		return e.ToEmail == party.Email
	})).Return(nil)

	results, err := f.svc.SendReminders(context.Background(), tenantID, domain.ReminderOverdue, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Sent)
	assert.Equal(t, overdueRental.ID, results[0].RentalID)
	f.rentals.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
}

func TestSendReminders_DueToday(t *testing.T) {
	f := setup()
	tenantID := uuid.New()
	due := activeRental(tenantID, today, "100")
	party := &domain.Party{ID: due.PartyID, Name: "Gupta & Sons", Email: "gupta@example.in"}

	f.rentals.On("ListByStatus", mock.Anything, tenantID, domain.RentalActive).
		Return([]domain.Rental{due}, nil)
	f.parties.On("GetByID", mock.Anything, tenantID, due.PartyID).Return(party, nil)
	f.notifier.On("Send", mock.Anything, mock.Anything).Return(nil)

	results, err := f.svc.SendReminders(context.Background(), tenantID, domain.ReminderDueToday, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Sent)
	// Due-today runs never mark rentals overdue.
	f.rentals.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSendReminders_DeliveryFailureRecorded(t *testing.T) {
	f := setup()
	tenantID := uuid.New()
	due := activeRental(tenantID, today, "100")
	party := &domain.Party{ID: due.PartyID, Name: "Gupta & Sons", Email: "gupta@example.in"}

	f.rentals.On("ListByStatus", mock.Anything, tenantID, domain.RentalActive).
		Return([]domain.Rental{due}, nil)
	f.parties.On("GetByID", mock.Anything, tenantID, due.PartyID).Return(party, nil)
	f.notifier.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp 550"))

	results, err := f.svc.SendReminders(context.Background(), tenantID, domain.ReminderDueToday, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Sent)
	assert.Contains(t, results[0].Error, "550")
}

func TestSendReminders_Manual(t *testing.T) {
	f := setup()
	tenantID := uuid.New()
	r := activeRental(tenantID, today.AddDate(0, 0, 10), "100")
	party := &domain.Party{ID: r.PartyID, Name: "Verma Rentals", Email: "verma@example.in"}

	f.rentals.On("GetByID", mock.Anything, tenantID, r.ID).Return(&r, nil)
	f.parties.On("GetByID", mock.Anything, tenantID, r.PartyID).Return(party, nil)
	f.notifier.On("Send", mock.Anything, mock.Anything).Return(nil)

	results, err := f.svc.SendReminders(context.Background(), tenantID, domain.ReminderManual, &r.ID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Sent)
}

func TestSendReminders_ManualRequiresID(t *testing.T) {
	f := setup()
	_, err := f.svc.SendReminders(context.Background(), uuid.New(), domain.ReminderManual, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
