package domain

import "time"

// User is the domain model for accounts created through sign-up.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	Phone        *string
	PasswordHash string
	IsActive     bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
