package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInsufficientRole   = errors.New("insufficient role for this action")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTenantInactive     = errors.New("tenant is inactive")
	ErrUserInactive       = errors.New("user is inactive")
	ErrDuplicateEmail     = errors.New("email already exists for this tenant")
	ErrDuplicateSlug      = errors.New("tenant slug already exists")

	// Computation-layer errors. Each names the precondition that failed so
	// handlers can surface a short message, never a stack trace.
	ErrInvalidInput          = errors.New("invalid numeric input")
	ErrIneligibleConsignment = errors.New("consignment value below ₹50,000 threshold")
	ErrServicesOnly          = errors.New("consignment has no goods line with a valid HSN code")
	ErrThresholdExceeded     = errors.New("gross receipts exceed the presumptive taxation limit")
	ErrAlreadyCancelled      = errors.New("e-way bill is already cancelled")
	ErrOverpayment           = errors.New("payment exceeds invoice balance due")
	ErrRentalReturned        = errors.New("rental is already returned")
)

// AggregationError reports a failed ledger aggregation. A partial ledger with
// a wrong running balance is worse than no ledger, so the whole build fails
// when any source fetch fails.
type AggregationError struct {
	Source string
	Err    error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("ledger aggregation failed fetching %s: %v", e.Source, e.Err)
}

func (e *AggregationError) Unwrap() error { return e.Err }
