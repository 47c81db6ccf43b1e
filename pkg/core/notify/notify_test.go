package notify

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	gomail "gopkg.in/mail.v2"
)

func TestSendWelcome_DisabledIsNoop(t *testing.T) {
	m := NewMailer(EmailConfig{})
	called := false
	m.send = func(*gomail.Message) error { called = true; return nil }

	if err := m.SendWelcome(context.Background(), "a@b.es", "Ana", "Admin"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if called {
		t.Error("mail sent while disabled")
	}
}

func TestSendWelcome_BuildsMessage(t *testing.T) {
	m := NewMailer(EmailConfig{SMTPServer: "smtp.local", SMTPPort: 25, FromEmail: "no-reply@franquicia.es", AppURL: "https://portal.example"})
	var sent *gomail.Message
	m.send = func(msg *gomail.Message) error { sent = msg; return nil }

	if err := m.SendWelcome(context.Background(), "ana@b.es", "Ana", "Admin"); err != nil {
		t.Fatalf("SendWelcome: %v", err)
	}
	if sent == nil {
		t.Fatal("no message sent")
	}
	if got := sent.GetHeader("To"); len(got) != 1 || got[0] != "ana@b.es" {
		t.Errorf("To = %v", got)
	}

	var buf bytes.Buffer
	if _, err := sent.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "https://portal.example") {
		t.Errorf("body does not contain app url:\n%s", buf.String())
	}
}

func TestSendWelcome_PropagatesSendError(t *testing.T) {
	m := NewMailer(EmailConfig{SMTPServer: "smtp.local", FromEmail: "x@y.es"})
	m.send = func(*gomail.Message) error { return errors.New("connection refused") }

	if err := m.SendWelcome(context.Background(), "a@b.es", "Ana", "Admin"); err == nil {
		t.Error("expected error")
	}
}

func TestWelcomeMessage(t *testing.T) {
	subject, body := welcomeMessage("Ana", "Super Admin", "")
	if subject == "" {
		t.Error("empty subject")
	}
	if !strings.Contains(body, "Ana") || !strings.Contains(body, "Super Admin") {
		t.Errorf("body = %q", body)
	}
	if strings.Contains(body, "Puedes acceder") {
		t.Errorf("body mentions access url without one configured: %q", body)
	}
}
