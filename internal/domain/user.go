package domain

import "time"

// User is the canonical account aggregate. The password hash lives here for
// credential verification only; it must never appear in any response or log.
type User struct {
	ID             int64
	Email          string
	Username       string
	HashedPassword string
	FullName       string
	FirstName      string
	LastName       string
	Phone          string
	AddressLine1   string
	AddressLine2   string
	City           string
	State          string
	PostalCode     string
	Country        string
	IsActive       bool
	IsVerified     bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
