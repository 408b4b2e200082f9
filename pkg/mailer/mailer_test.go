package mailer

import (
	"context"
	"net/smtp"
	"strings"
	"testing"

	"github.com/eventrave/eventrave-backend/pkg/config"
)

func TestNewSMTPNotifierRequiresHostAndFrom(t *testing.T) {
	if _, err := NewSMTPNotifier(config.SMTPConfig{From: "noreply@eventrave.com"}); err == nil {
		t.Fatalf("expected error without host")
	}
	if _, err := NewSMTPNotifier(config.SMTPConfig{Host: "smtp.gmail.com"}); err == nil {
		t.Fatalf("expected error without from address")
	}
}

func TestSendBuildsPayload(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	notifier := &smtpNotifier{
		cfg: config.SMTPConfig{Host: "smtp.gmail.com", Port: 587, Username: "robot", Password: "pw", From: "noreply@eventrave.com"},
		send: func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
			return nil
		},
	}

	err := notifier.Send(context.Background(), Message{
		Subject: "Eventrave Registration OTP",
		Body:    "Hi Asha,\n\nYour OTP is 482913.",
		To:      "23cse099@meaec.edu.in",
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	if gotAddr != "smtp.gmail.com:587" {
		t.Fatalf("unexpected addr %q", gotAddr)
	}
	if gotFrom != "noreply@eventrave.com" {
		t.Fatalf("unexpected from %q", gotFrom)
	}
	if len(gotTo) != 1 || gotTo[0] != "23cse099@meaec.edu.in" {
		t.Fatalf("unexpected recipients %v", gotTo)
	}
	payload := string(gotMsg)
	if !strings.Contains(payload, "Subject: Eventrave Registration OTP\r\n") {
		t.Fatalf("payload missing subject: %q", payload)
	}
	if !strings.HasSuffix(payload, "Your OTP is 482913.") {
		t.Fatalf("payload missing body: %q", payload)
	}
}

func TestSendRequiresRecipient(t *testing.T) {
	notifier := &smtpNotifier{cfg: config.SMTPConfig{Host: "h", From: "f"}, send: nil}
	if err := notifier.Send(context.Background(), Message{Subject: "s", Body: "b"}); err == nil {
		t.Fatalf("expected error without recipient")
	}
}
