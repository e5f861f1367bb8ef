package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/spec-kit/portfolio-api/internal/domain"
	"github.com/spec-kit/portfolio-api/internal/events"
	"github.com/spec-kit/portfolio-api/internal/repository"
	"github.com/spec-kit/portfolio-api/internal/sanitize"
	"github.com/spec-kit/portfolio-api/pkg/util"
)

// ContactInput carries one contact-form submission before sanitization.
type ContactInput struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Subject    string
	Message    string
	Newsletter bool
	RemoteIP   string
}

// ContactService validates and persists contact submissions.
type ContactService struct {
	contacts   repository.ContactRepository
	dispatcher events.Dispatcher
	validate   *validator.Validate
}

// NewContactService builds the service.
func NewContactService(contacts repository.ContactRepository, dispatcher events.Dispatcher) *ContactService {
	return &ContactService{
		contacts:   contacts,
		dispatcher: dispatcher,
		validate:   validator.New(),
	}
}

// Submit sanitizes and validates the submission, then persists it. Validation
// collects every failing rule; the returned error message joins them with
// ". " in field order.
func (s *ContactService) Submit(ctx context.Context, in ContactInput) (*domain.Contact, error) {
	firstName := sanitize.Clean(in.FirstName)
	lastName := sanitize.Clean(in.LastName)
	email := sanitize.Clean(in.Email)
	phone := sanitize.Clean(in.Phone)
	subject := sanitize.Clean(in.Subject)
	message := sanitize.Clean(in.Message)

	var errs []string
	if firstName == "" {
		errs = append(errs, "First name is required")
	}
	if lastName == "" {
		errs = append(errs, "Last name is required")
	}
	if email == "" {
		errs = append(errs, "Email address is required")
	} else if s.validate.Var(email, "email") != nil {
		errs = append(errs, "Please enter a valid email address")
	}
	if subject == "" {
		errs = append(errs, "Subject is required")
	}
	if message == "" {
		errs = append(errs, "Message is required")
	} else if len(message) < 10 {
		errs = append(errs, "Message must be at least 10 characters long")
	}
	if len(errs) > 0 {
		return nil, util.NewValidationError(strings.Join(errs, ". "))
	}

	contact := &domain.Contact{
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
		Phone:      optionalString(phone),
		Subject:    subject,
		Message:    message,
		Newsletter: in.Newsletter,
		IPAddress:  remoteIPOrUnknown(in.RemoteIP),
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, util.NewInternalError("Error saving your message. Please try again later.", err)
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventContactReceived,
		Timestamp: time.Now(),
		Payload: events.ContactReceivedPayload{
			ContactID:  contact.ID,
			Email:      contact.Email,
			Subject:    contact.Subject,
			Newsletter: contact.Newsletter,
			IPAddress:  contact.IPAddress,
		},
	})
	return contact, nil
}

func (s *ContactService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func remoteIPOrUnknown(ip string) string {
	if strings.TrimSpace(ip) == "" {
		return "unknown"
	}
	return ip
}
