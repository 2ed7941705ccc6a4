package port

import "context"

// ReminderEmail is one rental reminder to deliver.
type ReminderEmail struct {
	ToEmail  string
	ToName   string
	Subject  string
	HTMLBody string
	TextBody string
}

// Notifier defines the contract for delivering reminder emails.
type Notifier interface {
	Send(ctx context.Context, email ReminderEmail) error
}
