package rental

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"billmitra/internal/domain"
	"billmitra/internal/port"
)

// CreateInput is the DTO for opening a rental.
type CreateInput struct {
	PartyID            uuid.UUID       `json:"party_id" binding:"required"`
	ItemName           string          `json:"item_name" binding:"required"`
	RatePerDay         decimal.Decimal `json:"rate_per_day" binding:"required"`
	LateFeePerDay      decimal.Decimal `json:"late_fee_per_day"`
	StartDate          time.Time       `json:"start_date" binding:"required"`
	ExpectedReturnDate time.Time       `json:"expected_return_date" binding:"required"`
}

// Service manages rentals and reminder runs.
type Service interface {
	Create(ctx context.Context, tenantID uuid.UUID, input CreateInput) (*domain.Rental, error)
	Return(ctx context.Context, tenantID, rentalID uuid.UUID) (*domain.Rental, error)
	GetByID(ctx context.Context, tenantID, rentalID uuid.UUID) (*domain.Rental, error)
	List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Rental, int, error)
	SendReminders(ctx context.Context, tenantID uuid.UUID, kind domain.ReminderType, rentalID *uuid.UUID) ([]domain.ReminderResult, error)
}

type service struct {
	rentals  port.RentalRepository
	parties  port.PartyRepository
	notifier port.Notifier
	now      func() time.Time
}

// NewService creates a new rental Service implementation.
func NewService(rentals port.RentalRepository, parties port.PartyRepository, notifier port.Notifier) Service {
	return &service{rentals: rentals, parties: parties, notifier: notifier, now: time.Now}
}

// NewServiceWithClock creates a Service with a fixed clock, for tests.
func NewServiceWithClock(rentals port.RentalRepository, parties port.PartyRepository, notifier port.Notifier, now func() time.Time) Service {
	return &service{rentals: rentals, parties: parties, notifier: notifier, now: now}
}

func (s *service) Create(ctx context.Context, tenantID uuid.UUID, input CreateInput) (*domain.Rental, error) {
	if input.RatePerDay.IsNegative() || input.LateFeePerDay.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if input.ExpectedReturnDate.Before(input.StartDate) {
		return nil, domain.ErrInvalidInput
	}

	rental := &domain.Rental{
		TenantID:           tenantID,
		PartyID:            input.PartyID,
		ItemName:           input.ItemName,
		RatePerDay:         input.RatePerDay,
		LateFeePerDay:      input.LateFeePerDay,
		StartDate:          input.StartDate,
		ExpectedReturnDate: input.ExpectedReturnDate,
		LateFees:           decimal.Zero,
		Status:             domain.RentalActive,
	}
	if err := s.rentals.Create(ctx, rental); err != nil {
		return nil, fmt.Errorf("rental.Create: %w", err)
	}
	return rental, nil
}

// Return closes a rental, computing late fees for any days past the expected
// return date.
func (s *service) Return(ctx context.Context, tenantID, rentalID uuid.UUID) (*domain.Rental, error) {
	rental, err := s.rentals.GetByID(ctx, tenantID, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.Status == domain.RentalReturned {
		return nil, domain.ErrRentalReturned
	}

	now := s.now().UTC()
	days := DaysOverdue(rental.ExpectedReturnDate, now)
	rental.LateFees = LateFees(days, rental.LateFeePerDay)
	rental.ReturnedAt = &now
	rental.Status = domain.RentalReturned

	if err := s.rentals.Update(ctx, rental); err != nil {
		return nil, fmt.Errorf("rental.Return: %w", err)
	}
	return rental, nil
}

func (s *service) GetByID(ctx context.Context, tenantID, rentalID uuid.UUID) (*domain.Rental, error) {
	return s.rentals.GetByID(ctx, tenantID, rentalID)
}

func (s *service) List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Rental, int, error) {
	return s.rentals.ListByTenant(ctx, tenantID, offset, limit)
}

// SendReminders runs a reminder pass. Overdue runs also transition the
// rental to overdue status. Manual runs target a single rental regardless of
// its dates. The run proceeds per recipient: a delivery failure is recorded
// in the result, it does not abort the batch.
func (s *service) SendReminders(ctx context.Context, tenantID uuid.UUID, kind domain.ReminderType, rentalID *uuid.UUID) ([]domain.ReminderResult, error) {
	today := s.now().UTC()

	var targets []domain.Rental
	switch kind {
	case domain.ReminderManual:
		if rentalID == nil {
			return nil, domain.ErrInvalidInput
		}
		rental, err := s.rentals.GetByID(ctx, tenantID, *rentalID)
		if err != nil {
			return nil, err
		}
		targets = []domain.Rental{*rental}

	case domain.ReminderOverdue, domain.ReminderDueToday:
		active, err := s.rentals.ListByStatus(ctx, tenantID, domain.RentalActive)
		if err != nil {
			return nil, fmt.Errorf("rental.SendReminders: %w", err)
		}
		if kind == domain.ReminderOverdue {
			overdue, err := s.rentals.ListByStatus(ctx, tenantID, domain.RentalOverdue)
			if err != nil {
				return nil, fmt.Errorf("rental.SendReminders: %w", err)
			}
			targets = SelectOverdue(append(active, overdue...), today)
		} else {
			targets = SelectDueToday(active, today)
		}

	default:
		return nil, domain.ErrInvalidInput
	}

	results := make([]domain.ReminderResult, 0, len(targets))
	for i := range targets {
		rental := &targets[i]

		if kind == domain.ReminderOverdue && rental.Status == domain.RentalActive {
			rental.Status = domain.RentalOverdue
			if err := s.rentals.Update(ctx, rental); err != nil {
				return nil, fmt.Errorf("rental.SendReminders: marking overdue: %w", err)
			}
		}

		result := domain.ReminderResult{RentalID: rental.ID}
		party, err := s.parties.GetByID(ctx, tenantID, rental.PartyID)
		if err != nil {
			result.Error = "party lookup failed"
			results = append(results, result)
			continue
		}
		result.PartyName = party.Name
		result.Email = party.Email

		if err := s.notifier.Send(ctx, s.buildReminder(rental, party, kind, today)); err != nil {
			result.Error = err.Error()
		} else {
			result.Sent = true
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *service) buildReminder(rental *domain.Rental, party *domain.Party, kind domain.ReminderType, today time.Time) port.ReminderEmail {
	var subject, text string
	switch kind {
	case domain.ReminderOverdue:
		days := DaysOverdue(rental.ExpectedReturnDate, today)
		fees := LateFees(days, rental.LateFeePerDay)
		subject = fmt.Sprintf("Overdue rental: %s", rental.ItemName)
		text = fmt.Sprintf(
			"Hi %s,\n\nYour rental of %s was due on %s and is %d day(s) overdue. Late fees so far: ₹%s.\n\nPlease return it at the earliest.",
			party.Name, rental.ItemName, rental.ExpectedReturnDate.Format("02 Jan 2006"), days, fees.StringFixed(2))
	case domain.ReminderDueToday:
		subject = fmt.Sprintf("Rental due today: %s", rental.ItemName)
		text = fmt.Sprintf(
			"Hi %s,\n\nYour rental of %s is due for return today (%s).",
			party.Name, rental.ItemName, rental.ExpectedReturnDate.Format("02 Jan 2006"))
	default:
		subject = fmt.Sprintf("Rental reminder: %s", rental.ItemName)
		text = fmt.Sprintf(
			"Hi %s,\n\nThis is a reminder about your rental of %s, due for return on %s.",
			party.Name, rental.ItemName, rental.ExpectedReturnDate.Format("02 Jan 2006"))
	}

	return port.ReminderEmail{
		ToEmail:  party.Email,
		ToName:   party.Name,
		Subject:  subject,
		TextBody: text,
	}
}
