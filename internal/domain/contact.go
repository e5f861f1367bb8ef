package domain

import "time"

// Contact is a single contact-form submission. Rows are immutable once
// created; there is no update or delete path.
type Contact struct {
	ID         int64
	FirstName  string
	LastName   string
	Email      string
	Phone      *string
	Subject    string
	Message    string
	Newsletter bool
	IPAddress  string
	CreatedAt  time.Time
}
