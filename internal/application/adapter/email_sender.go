package adapter

import "context"

// SendEmailInput describes one outgoing email.
type SendEmailInput struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// EmailSender sends transactional email (PIN recovery codes).
type EmailSender interface {
	// Send delivers one email.
	Send(ctx context.Context, input SendEmailInput) error

	// IsConfigured reports whether the sender has credentials to work with.
	IsConfigured() bool
}
