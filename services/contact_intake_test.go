package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rpupo63/portfolio-site-backend/database/testutil"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{}

func (failingStore) Create(context.Context, *models.ContactMessage) error {
	return errors.New("disk full")
}

func TestSubmitSavesEvenWhenNotifyFails(t *testing.T) {
	ctx := context.Background()
	db := testutil.New(t)
	notifier := &fakeNotifier{channel: "email", err: errors.New("smtp down")}
	svc := NewContactService(db.ContactMessageRepo(), db.ProfileRepo(), []Notifier{notifier}, "fallback@example.com", time.Second)

	msg, err := svc.Submit(ctx, ContactSubmission{
		Name:     "Ada",
		Email:    "not-an-email",
		Subject:  "",
		Message:  "Hello there",
		Metadata: map[string]any{"user_agent": "test"},
	})
	require.NoError(t, err)
	require.NotZero(t, msg.ID)

	stored, err := db.ContactMessageRepo().FindByID(ctx, msg.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsRead)
	assert.Equal(t, "not-an-email", stored.Email)
	assert.Equal(t, "test", stored.Metadata["user_agent"])

	notes := notifier.received()
	require.Len(t, notes, 1)
	assert.Equal(t, "fallback@example.com", notes[0].Recipient)
	assert.Equal(t, msg.ID, notes[0].MessageID)
}

func TestSubmitPrefersProfileEmail(t *testing.T) {
	ctx := context.Background()
	db := testutil.New(t)
	require.NoError(t, db.ProfileRepo().Save(ctx, &models.Profile{Name: "Owner", Email: "owner@example.com"}))

	notifier := &fakeNotifier{channel: "email"}
	svc := NewContactService(db.ContactMessageRepo(), db.ProfileRepo(), []Notifier{notifier}, "fallback@example.com", time.Second)

	_, err := svc.Submit(ctx, ContactSubmission{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "m"})
	require.NoError(t, err)
	require.Len(t, notifier.received(), 1)
	assert.Equal(t, "owner@example.com", notifier.received()[0].Recipient)
}

func TestSubmitFailsOnlyWhenSaveFails(t *testing.T) {
	notifier := &fakeNotifier{channel: "email"}
	svc := NewContactService(failingStore{}, nil, []Notifier{notifier}, "fallback@example.com", time.Second)

	_, err := svc.Submit(context.Background(), ContactSubmission{Name: "Ada"})
	var apiErr *errs.ApiErr
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.GetFullError(), "disk full")
	assert.Empty(t, notifier.received())
}

func TestFallbackRecipient(t *testing.T) {
	assert.Equal(t, "contact@example.com", FallbackRecipient(map[string]string{
		"CONTACT_FALLBACK_EMAIL": "contact@example.com",
		"MAIL_DEFAULT_SENDER":    "sender@example.com",
	}))
	assert.Equal(t, "sender@example.com", FallbackRecipient(map[string]string{
		"MAIL_DEFAULT_SENDER": "sender@example.com",
		"MAIL_USERNAME":       "user@example.com",
	}))
	assert.Equal(t, "user@example.com", FallbackRecipient(map[string]string{"MAIL_USERNAME": "user@example.com"}))
	assert.Equal(t, "", FallbackRecipient(nil))
}
