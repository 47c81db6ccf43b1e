/*
Package notify sends transactional email to dashboard users.
*/
package notify

import (
	"context"
	"fmt"
	"log"
	"time"

	gomail "gopkg.in/mail.v2"
)

type EmailConfig struct {
	SMTPServer string `yaml:"smtp_server"`
	SMTPPort   int    `yaml:"smtp_port"`
	SMTPUser   string `yaml:"smtp_user"`
	SMTPPass   string `yaml:"smtp_pass"`
	FromEmail  string `yaml:"from_email"`
	AppURL     string `yaml:"app_url"`
}

// Enabled reports whether enough SMTP settings are present to send mail.
func (c EmailConfig) Enabled() bool {
	return c.SMTPServer != "" && c.FromEmail != ""
}

// Mailer delivers email through an SMTP relay.
type Mailer struct {
	cfg  EmailConfig
	send func(*gomail.Message) error
}

func NewMailer(cfg EmailConfig) *Mailer {
	m := &Mailer{cfg: cfg}
	m.send = m.dialAndSend
	return m
}

// SendWelcome notifies a newly created user. It never includes credentials.
func (m *Mailer) SendWelcome(ctx context.Context, to, fullName, roleLabel string) error {
	if !m.cfg.Enabled() {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	subject, body := welcomeMessage(fullName, roleLabel, m.cfg.AppURL)

	message := gomail.NewMessage()
	message.SetHeader("From", m.cfg.FromEmail)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/plain", body)

	if err := m.send(message); err != nil {
		return fmt.Errorf("failed to send welcome email to %s: %w", to, err)
	}
	log.Printf("[NOTIFY] Welcome email sent to %s", to)
	return nil
}

func (m *Mailer) dialAndSend(message *gomail.Message) error {
	dialer := gomail.NewDialer(m.cfg.SMTPServer, m.cfg.SMTPPort, m.cfg.SMTPUser, m.cfg.SMTPPass)
	dialer.Timeout = 10 * time.Second
	return dialer.DialAndSend(message)
}

func welcomeMessage(fullName, roleLabel, appURL string) (string, string) {
	subject := "Bienvenido al portal de franquiciados"
	body := fmt.Sprintf("Hola %s,\n\nSe ha creado tu usuario con el rol %s.\n", fullName, roleLabel)
	if appURL != "" {
		body += fmt.Sprintf("Puedes acceder en %s con la contraseña que te facilitará tu asesor.\n", appURL)
	}
	return subject, body
}
