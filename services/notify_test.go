package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	channel string
	err     error
	delay   time.Duration
	panics  bool

	mu    sync.Mutex
	notes []ContactNotification
}

func (f *fakeNotifier) Channel() string { return f.channel }

func (f *fakeNotifier) Notify(ctx context.Context, note ContactNotification) error {
	if f.panics {
		panic("boom")
	}
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	f.mu.Lock()
	f.notes = append(f.notes, note)
	f.mu.Unlock()
	return f.err
}

func (f *fakeNotifier) received() []ContactNotification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]ContactNotification(nil), f.notes...)
}

type fakeMailer struct {
	sent []Email
	err  error
}

func (m *fakeMailer) Send(_ context.Context, email Email) error {
	m.sent = append(m.sent, email)
	return m.err
}

func TestRunWithTimeoutGivesUp(t *testing.T) {
	err := runWithTimeout(context.Background(), "slow", 20*time.Millisecond, func(ctx context.Context) error {
		<-ctx.Done()
		time.Sleep(10 * time.Millisecond)
		return nil
	})
	assert.True(t, errs.IsTimeout(err))
}

func TestRunWithTimeoutRecoversPanic(t *testing.T) {
	err := runWithTimeout(context.Background(), "panicky", time.Second, func(context.Context) error {
		panic("boom")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestNotifyEverywhereKeepsGoing(t *testing.T) {
	failing := &fakeNotifier{channel: "email", err: errors.New("smtp down")}
	slow := &fakeNotifier{channel: "sms", delay: time.Second}
	broken := &fakeNotifier{channel: "webhook", panics: true}
	ok := &fakeNotifier{channel: "log"}

	note := ContactNotification{MessageID: 7, Recipient: "owner@example.com", Subject: "Hello"}
	sent := NotifyEverywhere(context.Background(), []Notifier{failing, slow, broken, ok}, note, 50*time.Millisecond)

	assert.Equal(t, []string{"log"}, sent)
	require.Len(t, ok.received(), 1)
	assert.Equal(t, uint(7), ok.received()[0].MessageID)
}

func TestEmailNotifierNeedsRecipient(t *testing.T) {
	mailer := &fakeMailer{}
	n := NewEmailNotifier("smtp", mailer)

	err := n.Notify(context.Background(), ContactNotification{Subject: "Hi"})
	assert.True(t, errs.IsNotifierUnconfigured(err))
	assert.Empty(t, mailer.sent)

	require.NoError(t, n.Notify(context.Background(), ContactNotification{Recipient: "owner@example.com", Email: "v@example.com", Subject: "Hi"}))
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, []string{"owner@example.com"}, mailer.sent[0].To)
	assert.Equal(t, "v@example.com", mailer.sent[0].ReplyTo)
}
