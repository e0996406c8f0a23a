package services

import "context"

// Email is one outgoing message. Text and HTML are alternative bodies of the
// same content; either may be empty.
type Email struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// Mailer delivers an Email through some transport
type Mailer interface {
	Send(ctx context.Context, email Email) error
}
