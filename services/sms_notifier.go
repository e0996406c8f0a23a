package services

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

const (
	smsChannel = "sms"
	smsMaxBody = 320
)

// MessageCreator is the Twilio call SMSNotifier makes
type MessageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// SMSNotifier texts a short summary of a contact message
type SMSNotifier struct {
	api  MessageCreator
	from string
	to   string
}

func NewSMSNotifier(accountSID, authToken, from, to string) *SMSNotifier {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &SMSNotifier{api: client.Api, from: from, to: to}
}

func (n *SMSNotifier) Channel() string { return smsChannel }

func (n *SMSNotifier) Notify(ctx context.Context, note ContactNotification) error {
	if n.from == "" || n.to == "" {
		return errs.NewNotifierUnconfiguredError(smsChannel, "TWILIO_FROM_NUMBER and CONTACT_SMS_TO")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(n.to)
	params.SetFrom(n.from)
	params.SetBody(smsBody(note))

	if _, err := n.api.CreateMessage(params); err != nil {
		return errs.NewNotifierError(smsChannel, err)
	}
	return nil
}

func smsBody(note ContactNotification) string {
	body := fmt.Sprintf("Portfolio contact from %s <%s>: %s", note.Name, note.Email, note.Subject)
	if utf8.RuneCountInString(body) <= smsMaxBody {
		return body
	}
	runes := []rune(body)
	return string(runes[:smsMaxBody-3]) + "..."
}
