package services

import (
	"context"
	"crypto/tls"

	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"gopkg.in/gomail.v2"
)

const smtpChannel = "smtp"

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	UseSSL   bool
	From     string
}

// SMTPConfigFromMap reads the MAIL_* keys
func SMTPConfigFromMap(c map[string]string) SMTPConfig {
	username := config.GetString(c, "MAIL_USERNAME", "")
	return SMTPConfig{
		Host:     config.GetString(c, "MAIL_SERVER", ""),
		Port:     config.GetInt(c, "MAIL_PORT", 587),
		Username: username,
		Password: config.GetString(c, "MAIL_PASSWORD", ""),
		UseSSL:   config.GetBool(c, "MAIL_USE_SSL", false),
		From:     config.GetString(c, "MAIL_DEFAULT_SENDER", username),
	}
}

// SMTPMailer sends mail with gomail. STARTTLS is used whenever the server
// offers it; UseSSL switches to implicit TLS.
type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(ctx context.Context, email Email) error {
	if m.cfg.Host == "" {
		return errs.NewNotifierUnconfiguredError(smtpChannel, "MAIL_SERVER")
	}
	from := email.From
	if from == "" {
		from = m.cfg.From
	}
	if from == "" {
		return errs.NewNotifierUnconfiguredError(smtpChannel, "MAIL_DEFAULT_SENDER")
	}
	if len(email.To) == 0 {
		return errs.NewNotifierUnconfiguredError(smtpChannel, "a recipient")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", email.To...)
	msg.SetHeader("Subject", email.Subject)
	if email.ReplyTo != "" {
		msg.SetHeader("Reply-To", email.ReplyTo)
	}
	switch {
	case email.Text != "" && email.HTML != "":
		msg.SetBody("text/plain", email.Text)
		msg.AddAlternative("text/html", email.HTML)
	case email.HTML != "":
		msg.SetBody("text/html", email.HTML)
	default:
		msg.SetBody("text/plain", email.Text)
	}

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	d.SSL = m.cfg.UseSSL
	d.TLSConfig = &tls.Config{ServerName: m.cfg.Host}

	if err := d.DialAndSend(msg); err != nil {
		return errs.NewNotifierError(smtpChannel, err)
	}
	return nil
}
