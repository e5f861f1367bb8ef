package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventContactReceived EventType = "contact_received"
	EventUserRegistered  EventType = "user_registered"
	EventUserSignedIn    EventType = "user_signed_in"
)

// Event represents a domain event emitted by services. Payloads carry only
// non-secret fields; password material never enters an event.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ContactReceivedPayload payload.
type ContactReceivedPayload struct {
	ContactID  int64  `json:"contact_id"`
	Email      string `json:"email"`
	Subject    string `json:"subject"`
	Newsletter bool   `json:"newsletter"`
	IPAddress  string `json:"ip_address"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}

// UserSignedInPayload payload.
type UserSignedInPayload struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}
