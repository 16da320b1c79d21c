// Package email sends transactional mail. Delivery is best-effort: the
// signup response is never gated on it.
package email

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Sender delivers a single message.
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender delivers mail through a plain SMTP relay.
type SMTPSender struct {
	addr string
	from string
}

func NewSMTPSender(addr, from string) *SMTPSender {
	return &SMTPSender{addr: addr, from: from}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(s.addr, nil, s.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// WelcomeBody renders the welcome message sent after signup.
func WelcomeBody(name, profileURL string) string {
	return fmt.Sprintf(
		"Hi %s,\n\nWelcome to CareerNet! Your profile is live at %s.\n\nThe CareerNet team\n",
		name, profileURL)
}
