package notifications

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/ppuranik79/Meeting-Room-Booking/pkg/config"
)

// Mailer sends one email. Implementations should return quickly; retry policy
// lives with the caller.
type Mailer interface {
	Send(ctx context.Context, email EmailMessage) error
}

type smtpMailer struct {
	addr string
	auth smtp.Auth
	from string
}

// NewSMTPMailer builds a Mailer over plain SMTP. Auth is skipped when no
// username is configured, which is how local debug servers like MailHog run.
func NewSMTPMailer(cfg *config.Config) Mailer {
	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	}

	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUser
	}

	return &smtpMailer{
		addr: cfg.SMTPHost + ":" + cfg.SMTPPort,
		auth: auth,
		from: from,
	}
}

func (m *smtpMailer) Send(_ context.Context, email EmailMessage) error {
	payload := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		m.from, email.To, email.Subject, email.Body)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{email.To}, []byte(payload)); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", email.To, err)
	}
	return nil
}
