package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/portfolio-api/internal/config"
	"github.com/spec-kit/portfolio-api/internal/domain"
	"github.com/spec-kit/portfolio-api/internal/repository"
	"github.com/spec-kit/portfolio-api/internal/service"
	"github.com/spec-kit/portfolio-api/pkg/util"
)

type stubUserRepo struct {
	users      map[string]*domain.User
	nextID     int64
	createErr  error
	lookupErr  error
	lastLogins map[int64]time.Time
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		users:      make(map[string]*domain.User),
		lastLogins: make(map[int64]time.Time),
	}
}

func (s *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	key := strings.ToLower(user.Email)
	if _, ok := s.users[key]; ok {
		return repository.ErrEmailTaken
	}
	s.nextID++
	user.ID = s.nextID
	user.IsActive = true
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	s.users[key] = &copied
	return nil
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	user, ok := s.users[strings.ToLower(email)]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (s *stubUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	if s.lookupErr != nil {
		return false, s.lookupErr
	}
	_, ok := s.users[strings.ToLower(email)]
	return ok, nil
}

func (s *stubUserRepo) UpdateLastLogin(_ context.Context, id int64, at time.Time) error {
	s.lastLogins[id] = at
	return nil
}

func newAccountService(repo repository.UserRepository) *service.AccountService {
	return service.NewAccountService(config.AuthConfig{BcryptCost: bcrypt.MinCost}, repo, nil)
}

func validSignUp() service.SignUpInput {
	return service.SignUpInput{
		FirstName:       "A",
		LastName:        "B",
		Email:           "a@b.com",
		Password:        "abcdef",
		ConfirmPassword: "abcdef",
	}
}

func TestSignUpCreatesAccount(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAccountService(repo)

	user, err := svc.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)
	require.Equal(t, int64(1), user.ID)
	require.Equal(t, "a@b.com", user.Email)
	require.NotEqual(t, "abcdef", user.PasswordHash, "plaintext must never be stored")
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("abcdef")))
	require.Len(t, repo.users, 1)
}

func TestSignUpValidationShortCircuits(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAccountService(repo)

	cases := []struct {
		name    string
		mutate  func(*service.SignUpInput)
		message string
	}{
		{"missing first name", func(in *service.SignUpInput) { in.FirstName = "" }, "All fields are required"},
		{"missing password", func(in *service.SignUpInput) { in.Password = "" }, "All fields are required"},
		{"invalid email", func(in *service.SignUpInput) { in.Email = "nope" }, "Please enter a valid email address"},
		{"mismatched passwords", func(in *service.SignUpInput) { in.ConfirmPassword = "different" }, "Passwords do not match"},
		{"short password", func(in *service.SignUpInput) {
			in.Password = "abc"
			in.ConfirmPassword = "abc"
		}, "Password must be at least 6 characters long"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validSignUp()
			tc.mutate(&in)
			_, err := svc.SignUp(context.Background(), in)
			require.Error(t, err)
			require.Equal(t, tc.message, err.Error())
			require.Empty(t, repo.users, "no row may be created")
		})
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAccountService(repo)

	_, err := svc.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)

	in := validSignUp()
	in.Email = "A@B.com" // case-insensitive match
	_, err = svc.SignUp(context.Background(), in)
	require.Error(t, err)
	require.Equal(t, "An account with this email already exists", err.Error())
	require.Len(t, repo.users, 1)
}

func TestSignUpRaceMapsUniqueViolation(t *testing.T) {
	// existence check passes but the insert hits the unique index
	repo := newStubUserRepo()
	repo.createErr = repository.ErrEmailTaken
	svc := newAccountService(repo)

	_, err := svc.SignUp(context.Background(), validSignUp())
	require.Error(t, err)
	require.Equal(t, "An account with this email already exists", err.Error())
}

func TestSignUpStoreErrorIsGeneric(t *testing.T) {
	repo := newStubUserRepo()
	repo.createErr = errors.New("connection reset")
	svc := newAccountService(repo)

	_, err := svc.SignUp(context.Background(), validSignUp())
	require.Error(t, err)
	require.True(t, util.IsUnexpected(err))
	require.Equal(t, "An error occurred. Please try again.", util.CallerMessage(err, ""))
}

func TestSignInRoundTrip(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAccountService(repo)

	created, err := svc.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)

	user, err := svc.SignIn(context.Background(), "a@b.com", "abcdef")
	require.NoError(t, err)
	require.Equal(t, created.ID, user.ID)
	require.NotNil(t, user.LastLogin)
	require.Contains(t, repo.lastLogins, created.ID)

	_, err = svc.SignIn(context.Background(), "a@b.com", "wrongpass")
	require.Error(t, err)
	require.Equal(t, "Invalid email or password", err.Error())
}

func TestSignInMissingFields(t *testing.T) {
	svc := newAccountService(newStubUserRepo())

	_, err := svc.SignIn(context.Background(), "", "secret")
	require.Equal(t, "Email and password are required", err.Error())

	_, err = svc.SignIn(context.Background(), "a@b.com", "")
	require.Equal(t, "Email and password are required", err.Error())
}

func TestSignInInvalidEmailSyntax(t *testing.T) {
	svc := newAccountService(newStubUserRepo())

	_, err := svc.SignIn(context.Background(), "not-an-email", "secret")
	require.Error(t, err)
	require.Equal(t, "Please enter a valid email address", err.Error())
}

func TestSignInFailuresAreIndistinguishable(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAccountService(repo)

	_, err := svc.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)
	repo.users["a@b.com"].IsActive = false

	_, inactiveErr := svc.SignIn(context.Background(), "a@b.com", "abcdef")
	_, missingErr := svc.SignIn(context.Background(), "ghost@b.com", "abcdef")

	require.Equal(t, "Invalid email or password", inactiveErr.Error())
	require.Equal(t, missingErr.Error(), inactiveErr.Error())
}

func TestSignInStoreErrorIsGeneric(t *testing.T) {
	repo := newStubUserRepo()
	repo.lookupErr = errors.New("dial tcp: i/o timeout")
	svc := newAccountService(repo)

	_, err := svc.SignIn(context.Background(), "a@b.com", "abcdef")
	require.Error(t, err)
	require.True(t, util.IsUnexpected(err))
	require.Equal(t, "An error occurred. Please try again.", util.CallerMessage(err, ""))
	require.NotContains(t, util.CallerMessage(err, ""), "i/o timeout")
}
