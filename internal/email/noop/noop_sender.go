package noop

import (
	"context"
	"log"

	"billmitra/internal/port"
)

type noopNotifier struct{}

// NewNoopNotifier creates a no-op Notifier that logs reminders to stdout.
func NewNoopNotifier() port.Notifier {
	return &noopNotifier{}
}

func (s *noopNotifier) Send(_ context.Context, email port.ReminderEmail) error {
	log.Printf("[NOOP EMAIL] %q to %s (%s)", email.Subject, email.ToName, email.ToEmail)
	return nil
}
