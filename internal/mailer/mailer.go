// Package mailer sends transactional mail (approval and rejection notices)
// over a plain SMTP relay. Sending is always best-effort: callers log
// failures and move on, they never roll back state on a mail error.
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/thewiseshop/pawtrait-backend/internal/config"
)

type Mailer struct {
	host   string
	port   string
	user   string
	pass   string
	sender string
}

func New(cfg *config.Config) *Mailer {
	return &Mailer{
		host:   cfg.SMTPHost,
		port:   cfg.SMTPPort,
		user:   cfg.SMTPUser,
		pass:   cfg.SMTPPass,
		sender: cfg.MailSender,
	}
}

// Configured reports whether a relay is set up; without one Send is a no-op
// error so callers can log and continue.
func (m *Mailer) Configured() bool {
	return m.host != "" && m.user != ""
}

func (m *Mailer) Send(recipient, subject, body string) error {
	if recipient == "" {
		return fmt.Errorf("recipient email address cannot be empty")
	}
	if !m.Configured() {
		return fmt.Errorf("smtp relay is not configured")
	}

	contentType := "text/plain; charset=UTF-8"
	if strings.Contains(body, "<html") || strings.Contains(body, "<p>") {
		contentType = "text/html; charset=UTF-8"
	}

	msg := strings.Join([]string{
		"From: " + m.sender,
		"To: " + recipient,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: " + contentType,
		"",
		body,
	}, "\r\n")

	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	addr := m.host + ":" + m.port
	if err := smtp.SendMail(addr, auth, m.sender, []string{recipient}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
