package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/eventrave/eventrave-backend/pkg/config"
)

// Message is a single outbound email.
type Message struct {
	Subject string
	Body    string
	To      string
}

// Notifier sends formatted email messages.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

type smtpNotifier struct {
	cfg  config.SMTPConfig
	send sendFunc
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// NewSMTPNotifier builds a notifier that delivers through the configured
// SMTP relay.
func NewSMTPNotifier(cfg config.SMTPConfig) (Notifier, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("smtp from address is required")
	}
	return &smtpNotifier{cfg: cfg, send: smtp.SendMail}, nil
}

func (n *smtpNotifier) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return fmt.Errorf("recipient is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}

	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	payload := buildPayload(n.cfg.From, msg)

	if err := n.send(addr, auth, n.cfg.From, []string{msg.To}, payload); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}
	return nil
}

func buildPayload(from string, msg Message) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)
	return []byte(b.String())
}
