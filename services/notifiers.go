package services

import (
	"net/http"
	"time"

	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/rs/zerolog/log"
)

// NotifiersFromConfig builds the contact notification channels. Email is
// always present (Resend when RESEND_API_KEY is set, SMTP otherwise) so a
// missing mail setup shows up as an unconfigured attempt in logs and metrics.
// SMS is added when TWILIO_ACCOUNT_SID is set.
func NotifiersFromConfig(c map[string]string) []Notifier {
	var notifiers []Notifier

	if apiKey := config.GetString(c, "RESEND_API_KEY", ""); apiKey != "" {
		from := config.GetString(c, "RESEND_FROM_EMAIL", config.GetString(c, "MAIL_DEFAULT_SENDER", ""))
		client := &http.Client{Timeout: config.GetSeconds(c, "NOTIFY_TIMEOUT_SECONDS", 10) + 5*time.Second}
		notifiers = append(notifiers, NewEmailNotifier(resendChannel, NewResendMailer(apiKey, from, client)))
	} else {
		smtp := SMTPConfigFromMap(c)
		if smtp.Host == "" {
			log.Warn().Msg("MAIL_SERVER is not set; contact emails will not be delivered")
		}
		notifiers = append(notifiers, NewEmailNotifier(smtpChannel, NewSMTPMailer(smtp)))
	}

	if sid := config.GetString(c, "TWILIO_ACCOUNT_SID", ""); sid != "" {
		notifiers = append(notifiers, NewSMSNotifier(
			sid,
			config.GetString(c, "TWILIO_AUTH_TOKEN", ""),
			config.GetString(c, "TWILIO_FROM_NUMBER", ""),
			config.GetString(c, "CONTACT_SMS_TO", ""),
		))
	}

	return notifiers
}
