package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/portfolio-api/internal/auth"
	"github.com/spec-kit/portfolio-api/internal/config"
	"github.com/spec-kit/portfolio-api/internal/domain"
	"github.com/spec-kit/portfolio-api/internal/events"
	"github.com/spec-kit/portfolio-api/internal/repository"
	"github.com/spec-kit/portfolio-api/internal/sanitize"
	"github.com/spec-kit/portfolio-api/pkg/util"
)

const genericAccountError = "An error occurred. Please try again."

// SignUpInput carries a registration request before sanitization. Password
// fields are used verbatim and never escaped or logged.
type SignUpInput struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

// AccountService coordinates sign-up and sign-in flows.
type AccountService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	validate   *validator.Validate
	bcryptCost int
}

// NewAccountService builds the service.
func NewAccountService(cfg config.AuthConfig, users repository.UserRepository, dispatcher events.Dispatcher) *AccountService {
	return &AccountService{
		users:      users,
		dispatcher: dispatcher,
		validate:   validator.New(),
		bcryptCost: cfg.BcryptCost,
	}
}

// SignUp creates a new account. Validation short-circuits on the first
// failing rule. The duplicate-email existence check is backed by the unique
// index on lower(email), so concurrent registrations cannot both land.
func (s *AccountService) SignUp(ctx context.Context, in SignUpInput) (*domain.User, error) {
	firstName := sanitize.Clean(in.FirstName)
	lastName := sanitize.Clean(in.LastName)
	email := sanitize.Email(in.Email)
	phone := sanitize.Clean(in.Phone)

	if firstName == "" || lastName == "" || email == "" || in.Password == "" {
		return nil, util.NewValidationError("All fields are required")
	}
	if s.validate.Var(email, "email") != nil {
		return nil, util.NewValidationError("Please enter a valid email address")
	}
	if in.Password != in.ConfirmPassword {
		return nil, util.NewValidationError("Passwords do not match")
	}
	if len(in.Password) < 6 {
		return nil, util.NewValidationError("Password must be at least 6 characters long")
	}

	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, util.NewInternalError(genericAccountError, err)
	}
	if exists {
		return nil, util.NewConflict("An account with this email already exists")
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, util.NewInternalError(genericAccountError, err)
	}

	user := &domain.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		Phone:        optionalString(phone),
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, util.NewConflict("An account with this email already exists")
		}
		return nil, util.NewInternalError(genericAccountError, err)
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventUserRegistered,
		Timestamp: time.Now(),
		Payload:   events.UserRegisteredPayload{UserID: user.ID, Email: user.Email},
	})
	return user, nil
}

// SignIn authenticates a user by email and password. A missing account, a
// deactivated one and a wrong password all return the same failure; a bcrypt
// comparison runs in every branch so the cases cost the same.
func (s *AccountService) SignIn(ctx context.Context, rawEmail, password string) (*domain.User, error) {
	email := sanitize.Email(rawEmail)

	if email == "" || password == "" {
		return nil, util.NewValidationError("Email and password are required")
	}
	if s.validate.Var(email, "email") != nil {
		return nil, util.NewValidationError("Please enter a valid email address")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			_ = auth.CompareDummy(password)
			return nil, util.NewAuthFailure("Invalid email or password")
		}
		return nil, util.NewInternalError(genericAccountError, err)
	}

	compareErr := auth.ComparePassword(user.PasswordHash, password)
	if !user.IsActive || compareErr != nil {
		return nil, util.NewAuthFailure("Invalid email or password")
	}

	now := time.Now()
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, util.NewInternalError(genericAccountError, err)
	}
	user.LastLogin = &now

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventUserSignedIn,
		Timestamp: now,
		Payload:   events.UserSignedInPayload{UserID: user.ID, Email: user.Email},
	})
	return user, nil
}

func (s *AccountService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
