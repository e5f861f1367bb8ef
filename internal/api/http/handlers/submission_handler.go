package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/portfolio-api/internal/api/dto"
	"github.com/spec-kit/portfolio-api/internal/domain"
	"github.com/spec-kit/portfolio-api/internal/observability"
	"github.com/spec-kit/portfolio-api/internal/sanitize"
	"github.com/spec-kit/portfolio-api/internal/service"
	"github.com/spec-kit/portfolio-api/pkg/util"
)

// SubmissionHandler serves the single form-submission endpoint: it extracts
// the action discriminator and dispatches to the matching flow.
type SubmissionHandler struct {
	contacts *service.ContactService
	accounts *service.AccountService
	logger   *zap.Logger
	metrics  *observability.Metrics
}

// NewSubmissionHandler constructs handler.
func NewSubmissionHandler(contacts *service.ContactService, accounts *service.AccountService, logger *zap.Logger, metrics *observability.Metrics) *SubmissionHandler {
	return &SubmissionHandler{contacts: contacts, accounts: accounts, logger: logger, metrics: metrics}
}

// Handle processes POST /api.
func (h *SubmissionHandler) Handle(c *fiber.Ctx) error {
	payload := parseBody(c.Body())
	action := sanitize.Clean(payload.String("action"))

	// diagnostic log of every submission; credentials are masked
	h.logger.Info("api request",
		zap.String("action", action),
		zap.Any("payload", payload.Redacted()))

	parsed, known := domain.ParseAction(action)
	if !known {
		return c.JSON(dto.Fail("Invalid action specified"))
	}
	h.metrics.RecordAction(string(parsed))

	switch parsed {
	case domain.ActionContact:
		return h.handleContact(c, payload)
	case domain.ActionSignIn:
		return h.handleSignIn(c, payload)
	default:
		return h.handleSignUp(c, payload)
	}
}

// MethodNotAllowed rejects anything but POST without touching a handler.
func (h *SubmissionHandler) MethodNotAllowed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusMethodNotAllowed).JSON(dto.Fail("Method not allowed"))
}

func (h *SubmissionHandler) handleContact(c *fiber.Ctx, payload dto.Payload) error {
	req := dto.NewContactRequest(payload)
	_, err := h.contacts.Submit(c.UserContext(), service.ContactInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Subject:    req.Subject,
		Message:    req.Message,
		Newsletter: req.Newsletter,
		RemoteIP:   c.IP(),
	})
	if err != nil {
		h.logFailure("contact form error", err)
		return c.JSON(dto.Fail(util.CallerMessage(err, "Error saving your message. Please try again later.")))
	}
	return c.JSON(dto.OK("Thank you for your message! I will get back to you soon.", nil))
}

func (h *SubmissionHandler) handleSignIn(c *fiber.Ctx, payload dto.Payload) error {
	req := dto.NewSignInRequest(payload)
	user, err := h.accounts.SignIn(c.UserContext(), req.Email, req.Password)
	if err != nil {
		h.logFailure("sign in error", err)
		return c.JSON(dto.Fail(util.CallerMessage(err, "An error occurred. Please try again.")))
	}
	return c.JSON(dto.OK("Login successful", fiber.Map{"user": dto.NewUserData(user)}))
}

func (h *SubmissionHandler) handleSignUp(c *fiber.Ctx, payload dto.Payload) error {
	req := dto.NewSignUpRequest(payload)
	user, err := h.accounts.SignUp(c.UserContext(), service.SignUpInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		h.logFailure("sign up error", err)
		return c.JSON(dto.Fail(util.CallerMessage(err, "An error occurred. Please try again.")))
	}
	return c.JSON(dto.OK("Account created successfully!", fiber.Map{"user": dto.NewUserData(user)}))
}

// logFailure records persistence-layer anomalies with full detail. Routine
// validation outcomes are not anomalies and stay out of the error log.
func (h *SubmissionHandler) logFailure(msg string, err error) {
	if util.IsUnexpected(err) {
		h.logger.Error(msg, zap.Error(err))
	}
}

// parseBody reads the body as a JSON object, falling back to form-encoded
// key/value data when it is not one.
func parseBody(body []byte) dto.Payload {
	if payload, ok := dto.PayloadFromJSON(body); ok {
		return payload
	}
	values, err := url.ParseQuery(string(body))
	if err != nil {
		return dto.Payload{}
	}
	return dto.PayloadFromForm(values)
}
