package util

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors. Message is safe to surface to
// the caller; Err carries the underlying cause for server-side logs only.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status}
}

// NewValidationError flags caller input that failed a validation rule. The
// message is shown verbatim to the caller.
func NewValidationError(message string) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusOK)
}

// NewAuthFailure is the single generic credential rejection; it never reveals
// whether the account was missing, inactive, or the password wrong.
func NewAuthFailure(message string) error {
	return NewDomainError("INVALID_CREDENTIALS", message, http.StatusOK)
}

// NewConflict flags a uniqueness conflict with a caller-safe message.
func NewConflict(message string) error {
	return NewDomainError("CONFLICT", message, http.StatusOK)
}

// NewInternalError wraps an unexpected failure behind a generic message.
func NewInternalError(message string, err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// AsDomainError extracts a DomainError when err carries one.
func AsDomainError(err error) (*DomainError, bool) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr, true
	}
	return nil, false
}

// CallerMessage returns the caller-safe message for err, substituting
// fallback for anything that is not a DomainError.
func CallerMessage(err error, fallback string) string {
	if de, ok := AsDomainError(err); ok {
		return de.Message
	}
	return fallback
}

// IsUnexpected reports whether err should be logged as an anomaly rather
// than treated as a routine validation outcome.
func IsUnexpected(err error) bool {
	de, ok := AsDomainError(err)
	if !ok {
		return true
	}
	return de.Code == "INTERNAL_ERROR"
}
