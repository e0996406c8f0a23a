package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/metrics"
	"github.com/rs/zerolog/log"
)

// ContactNotification carries a saved submission to the notification channels
type ContactNotification struct {
	MessageID uint
	Recipient string
	Name      string
	Email     string
	Subject   string
	Message   string
}

// Notifier is one channel that tells the owner about a new message
type Notifier interface {
	Channel() string
	Notify(ctx context.Context, note ContactNotification) error
}

// EmailNotifier adapts a Mailer to the Notifier interface
type EmailNotifier struct {
	channel string
	mailer  Mailer
}

func NewEmailNotifier(channel string, mailer Mailer) *EmailNotifier {
	return &EmailNotifier{channel: channel, mailer: mailer}
}

func (n *EmailNotifier) Channel() string { return n.channel }

func (n *EmailNotifier) Notify(ctx context.Context, note ContactNotification) error {
	if note.Recipient == "" {
		return errs.NewNotifierUnconfiguredError(n.channel, "a recipient address")
	}
	email, err := ContactEmail(note)
	if err != nil {
		return err
	}
	return n.mailer.Send(ctx, email)
}

// NotifyEverywhere runs every channel, each bounded by timeout. A failing
// channel is logged and counted and never stops the others. It returns the
// names of the channels that delivered.
func NotifyEverywhere(ctx context.Context, notifiers []Notifier, note ContactNotification, timeout time.Duration) []string {
	var successes []string

	for _, n := range notifiers {
		channel := n.Channel()
		err := runWithTimeout(ctx, channel, timeout, func(ctx context.Context) error {
			return n.Notify(ctx, note)
		})

		outcome := metrics.OutcomeSent
		switch {
		case err == nil:
			successes = append(successes, channel)
		case errs.IsNotifierUnconfigured(err):
			outcome = metrics.OutcomeUnconfigured
		case errs.IsTimeout(err):
			outcome = metrics.OutcomeTimeout
		default:
			outcome = metrics.OutcomeFailed
		}
		metrics.ObserveNotification(channel, outcome)

		if err != nil {
			log.Error().
				Err(err).
				Str("channel", channel).
				Uint("messageId", note.MessageID).
				Str("outcome", outcome).
				Msg("Contact notification failed")
			continue
		}
		log.Info().Str("channel", channel).Uint("messageId", note.MessageID).Msg("Contact notification sent")
	}

	return successes
}

// runWithTimeout gives up on fn after timeout. Transports that ignore ctx
// keep running in the background until they return on their own.
func runWithTimeout(ctx context.Context, operation string, timeout time.Duration, fn func(context.Context) error) error {
	if timeout <= 0 {
		return safeCall(ctx, fn)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- safeCall(ctx, fn)
	}()

	select {
	case err := <-done:
		if errors.Is(err, context.DeadlineExceeded) {
			return errs.NewTimeoutError(operation, timeout)
		}
		return err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return errs.NewTimeoutError(operation, timeout)
		}
		return ctx.Err()
	}
}

func safeCall(ctx context.Context, fn func(context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("notifier panic: %v", r)
		}
	}()
	return fn(ctx)
}
