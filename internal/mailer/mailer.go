// Package mailer sends transactional HTML email. Production sends happen on
// the background task runner after the HTTP response is flushed; callers log
// failures and never surface them to clients.
package mailer

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/hireline/applicant-tracking-api/internal/config"
)

// Mailer delivers a single HTML message.
type Mailer interface {
	Send(to, subject, html string) error
}

// SMTPMailer delivers through an SMTP relay via gomail.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer creates a Mailer from SMTP configuration.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (m *SMTPMailer) Send(to, subject, html string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
