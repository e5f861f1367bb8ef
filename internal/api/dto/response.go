package dto

import (
	"time"

	"github.com/spec-kit/portfolio-api/internal/domain"
)

// TimestampLayout is the envelope timestamp format.
const TimestampLayout = "2006-01-02 15:04:05"

// Envelope is the uniform response shape for every outcome.
type Envelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      any    `json:"data"`
	Timestamp string `json:"timestamp"`
}

// OK wraps a successful outcome.
func OK(message string, data any) Envelope {
	return Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().Format(TimestampLayout),
	}
}

// Fail wraps a failed outcome with a nil data payload.
func Fail(message string) Envelope {
	return Envelope{
		Success:   false,
		Message:   message,
		Timestamp: time.Now().Format(TimestampLayout),
	}
}

// UserData is the caller-visible account shape. It never carries the
// password hash.
type UserData struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// NewUserData maps a domain user to its response shape.
func NewUserData(user *domain.User) UserData {
	return UserData{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}
