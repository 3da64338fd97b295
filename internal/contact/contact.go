// Package contact handles contact form submissions.
package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/sanjayvyas/portfolio/internal/models"
	"github.com/sanjayvyas/portfolio/internal/ui"
)

const (
	FormTarget = "contact-form"

	SuccessMessage = "Thank you for your message! I'll get back to you soon."
	FailureMessage = "Sorry, there was an error sending your message. Please try again."

	maxMessageLength = 5000
)

// ValidationError is a problem with the submitted form that the visitor can fix.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

type Form struct {
	Name    string
	Email   string
	Subject string
	Message string
}

func ParseForm(values url.Values) Form {
	name := values.Get("name")
	if name == "" {
		name = values.Get("fullName")
	}
	return Form{
		Name:    strings.TrimSpace(name),
		Email:   strings.TrimSpace(values.Get("email")),
		Subject: strings.TrimSpace(values.Get("subject")),
		Message: strings.TrimSpace(values.Get("message")),
	}
}

func (f Form) Validate() error {
	if f.Name == "" {
		return &ValidationError{Field: "name", Reason: "Please enter your name."}
	}
	if f.Email == "" {
		return &ValidationError{Field: "email", Reason: "Please enter your email address."}
	}
	if _, err := mail.ParseAddress(f.Email); err != nil {
		return &ValidationError{Field: "email", Reason: "Please enter a valid email address."}
	}
	if f.Message == "" {
		return &ValidationError{Field: "message", Reason: "Please enter a message."}
	}
	if utf8.RuneCountInString(f.Message) > maxMessageLength {
		return &ValidationError{Field: "message", Reason: fmt.Sprintf("Messages are limited to %d characters.", maxMessageLength)}
	}
	return nil
}

// Store persists submitted messages.
type Store interface {
	SaveContactMessage(ctx context.Context, m models.ContactMessage) error
}

type Sender interface {
	Send(ctx context.Context, m models.ContactMessage) error
}

type Service struct {
	sender Sender
	store  Store
	now    func() time.Time
}

// NewService builds a Service. store may be nil, in which case messages are
// only sent.
func NewService(sender Sender, store Store) *Service {
	return &Service{sender: sender, store: store, now: time.Now}
}

func (s *Service) Submit(ctx context.Context, f Form) (models.ContactMessage, error) {
	if err := f.Validate(); err != nil {
		return models.ContactMessage{}, err
	}

	m := models.ContactMessage{
		ID:        uuid.NewString(),
		Name:      f.Name,
		Email:     f.Email,
		Subject:   f.Subject,
		Message:   f.Message,
		CreatedAt: s.now().UTC(),
	}

	if s.store != nil {
		if err := s.store.SaveContactMessage(ctx, m); err != nil {
			return m, fmt.Errorf("failed to save contact message: %w", err)
		}
	}

	if err := s.sender.Send(ctx, m); err != nil {
		return m, fmt.Errorf("failed to send contact message: %w", err)
	}

	slog.Info("Contact message received", "id", m.ID, "email", m.Email)
	return m, nil
}

// Bind registers the contact form submit handler.
func (s *Service) Bind(surface ui.Surface) {
	surface.On(ui.Submit, FormTarget, func(ctx context.Context, ev ui.Event) error {
		_, err := s.Submit(ctx, ParseForm(ev.Form))
		return err
	})
}

// UserMessage maps a submission result to the text shown to the visitor.
func UserMessage(err error) string {
	if err == nil {
		return SuccessMessage
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Reason
	}
	return FailureMessage
}
