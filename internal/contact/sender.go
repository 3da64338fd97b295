package contact

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/sanjayvyas/portfolio/internal/models"
)

// SimulatedSender accepts every message after a fixed delay.
type SimulatedSender struct {
	Delay time.Duration
}

func (s SimulatedSender) Send(ctx context.Context, m models.ContactMessage) error {
	if s.Delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.Delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type SMTPSender struct {
	Host     string
	Port     string
	Username string
	Password string
	To       string

	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPSender(host, port, username, password, to string) *SMTPSender {
	return &SMTPSender{
		Host:     host,
		Port:     port,
		Username: username,
		Password: password,
		To:       to,
		sendMail: smtp.SendMail,
	}
}

func (s *SMTPSender) Send(ctx context.Context, m models.ContactMessage) error {
	if s.Username == "" || s.Password == "" {
		return fmt.Errorf("SMTP credentials not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	send := s.sendMail
	if send == nil {
		send = smtp.SendMail
	}
	auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)
	if err := send(s.Host+":"+s.Port, auth, s.Username, []string{s.To}, s.compose(m)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func (s *SMTPSender) compose(m models.ContactMessage) []byte {
	subject := "Portfolio Contact: " + m.Name
	if m.Subject != "" {
		subject += " - " + m.Subject
	}

	var b strings.Builder
	b.WriteString("To: " + s.To + "\r\n")
	b.WriteString("From: " + s.Username + "\r\n")
	b.WriteString("Reply-To: " + headerValue(m.Email) + "\r\n")
	b.WriteString("Subject: " + headerValue(subject) + "\r\n")
	b.WriteString("\r\n")
	b.WriteString("New contact form submission from your portfolio:\r\n\r\n")
	b.WriteString("Name: " + headerValue(m.Name) + "\r\n")
	b.WriteString("Email: " + headerValue(m.Email) + "\r\n")
	b.WriteString("Message:\r\n" + m.Message + "\r\n")
	return []byte(b.String())
}

// headerValue strips line breaks so form input cannot inject headers.
func headerValue(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
