package dto

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
)

// Payload is the untyped field bag extracted from a request body, either a
// JSON object or conventional form-encoded data. Unrecognized fields are
// simply never read.
type Payload map[string]any

// PayloadFromJSON parses body as a JSON object. ok is false when the body is
// not an object, signalling the form-encoded fallback.
func PayloadFromJSON(body []byte) (Payload, bool) {
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return nil, false
	}
	return Payload(fields), true
}

// PayloadFromForm builds a payload from form-encoded values.
func PayloadFromForm(values url.Values) Payload {
	fields := make(map[string]any, len(values))
	for key := range values {
		fields[key] = values.Get(key)
	}
	return Payload(fields)
}

// String returns the field as a string, rendering scalar JSON values the way
// a form submission would.
func (p Payload) String(key string) string {
	switch v := p[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// Bool coerces the field to a boolean. JSON true, any non-zero number and
// the usual checkbox strings all count as set.
func (p Payload) Bool(key string) bool {
	switch v := p[key].(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "on", "yes":
			return true
		}
	}
	return false
}

// Redacted returns a copy safe for diagnostic logging; credential fields are
// masked so plaintext passwords never reach the log.
func (p Payload) Redacted() map[string]any {
	out := make(map[string]any, len(p))
	for key, value := range p {
		switch key {
		case "password", "confirmPassword":
			out[key] = "[redacted]"
		default:
			out[key] = value
		}
	}
	return out
}

// ContactRequest is the typed payload for the contact action.
type ContactRequest struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Subject    string
	Message    string
	Newsletter bool
}

// SignInRequest is the typed payload for the signin action.
type SignInRequest struct {
	Email    string
	Password string
}

// SignUpRequest is the typed payload for the signup action.
type SignUpRequest struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

// NewContactRequest extracts the contact fields.
func NewContactRequest(p Payload) ContactRequest {
	return ContactRequest{
		FirstName:  p.String("firstName"),
		LastName:   p.String("lastName"),
		Email:      p.String("email"),
		Phone:      p.String("phone"),
		Subject:    p.String("subject"),
		Message:    p.String("message"),
		Newsletter: p.Bool("newsletter"),
	}
}

// NewSignInRequest extracts the signin fields.
func NewSignInRequest(p Payload) SignInRequest {
	return SignInRequest{
		Email:    p.String("email"),
		Password: p.String("password"),
	}
}

// NewSignUpRequest extracts the signup fields.
func NewSignUpRequest(p Payload) SignUpRequest {
	return SignUpRequest{
		FirstName:       p.String("firstName"),
		LastName:        p.String("lastName"),
		Email:           p.String("email"),
		Phone:           p.String("phone"),
		Password:        p.String("password"),
		ConfirmPassword: p.String("confirmPassword"),
	}
}
