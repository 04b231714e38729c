package email

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPSender delivers messages through a single SMTP endpoint. It implements
// the engine's EmailSender interface.
type SMTPSender struct {
	addr string
	from string
	auth smtp.Auth
}

// NewSMTPSender creates a sender for the given host:port endpoint. When
// username is empty the connection is unauthenticated.
func NewSMTPSender(addr, from, username, password string) (*SMTPSender, error) {
	if addr == "" {
		return nil, errors.New("smtp address required")
	}
	if from == "" {
		return nil, errors.New("smtp from address required")
	}

	s := &SMTPSender{
		addr: addr,
		from: from,
	}
	if username != "" {
		host := addr
		if i := strings.LastIndex(addr, ":"); i >= 0 {
			host = addr[:i]
		}
		s.auth = smtp.PlainAuth("", username, password, host)
	}
	return s, nil
}

// Send delivers one plain-text message synchronously. The send itself is not
// cancellable mid-flight; ctx is only consulted before dialing.
func (s *SMTPSender) Send(ctx context.Context, to, subject, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(content)

	if err := smtp.SendMail(s.addr, s.auth, s.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}
