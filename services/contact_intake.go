package services

import (
	"context"
	"time"

	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// ContactStore persists contact messages
type ContactStore interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
}

// ProfileReader finds the site owner's profile, nil when there is none
type ProfileReader interface {
	First(ctx context.Context) (*models.Profile, error)
}

// ContactSubmission is one contact form post. Fields are stored as given;
// nothing is format checked.
type ContactSubmission struct {
	Name     string
	Email    string
	Subject  string
	Message  string
	Metadata map[string]any
}

// ContactService saves submissions and then tells the owner about them.
// Only the save can fail a submission.
type ContactService struct {
	store         ContactStore
	profiles      ProfileReader
	notifiers     []Notifier
	fallbackEmail string
	timeout       time.Duration
	logger        zerolog.Logger
}

func NewContactService(store ContactStore, profiles ProfileReader, notifiers []Notifier, fallbackEmail string, timeout time.Duration) *ContactService {
	return &ContactService{
		store:         store,
		profiles:      profiles,
		notifiers:     notifiers,
		fallbackEmail: fallbackEmail,
		timeout:       timeout,
		logger:        log.With().Str("service", "ContactService").Logger(),
	}
}

// FallbackRecipient picks the configured address used when no profile email exists
func FallbackRecipient(c map[string]string) string {
	sender := config.GetString(c, "MAIL_DEFAULT_SENDER", config.GetString(c, "MAIL_USERNAME", ""))
	return config.GetString(c, "CONTACT_FALLBACK_EMAIL", sender)
}

func (s *ContactService) Submit(ctx context.Context, sub ContactSubmission) (*models.ContactMessage, error) {
	msg := &models.ContactMessage{
		Name:    sub.Name,
		Email:   sub.Email,
		Subject: sub.Subject,
		Message: sub.Message,
	}
	if len(sub.Metadata) > 0 {
		msg.Metadata = datatypes.JSONMap(sub.Metadata)
	}

	if err := s.store.Create(ctx, msg); err != nil {
		return nil, errs.NewDatabaseError("create", "contact message", err)
	}
	s.logger.Info().Uint("messageId", msg.ID).Msg("Contact message saved")

	// The message is saved; a client hanging up must not cancel the notification.
	notifyCtx := context.WithoutCancel(ctx)
	note := ContactNotification{
		MessageID: msg.ID,
		Recipient: s.recipient(notifyCtx),
		Name:      msg.Name,
		Email:     msg.Email,
		Subject:   msg.Subject,
		Message:   msg.Message,
	}
	NotifyEverywhere(notifyCtx, s.notifiers, note, s.timeout)

	return msg, nil
}

func (s *ContactService) recipient(ctx context.Context) string {
	if s.profiles == nil {
		return s.fallbackEmail
	}
	profile, err := s.profiles.First(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Profile lookup failed, using fallback recipient")
		return s.fallbackEmail
	}
	if profile != nil && profile.Email != "" {
		return profile.Email
	}
	return s.fallbackEmail
}
