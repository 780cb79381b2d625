package domain

import "time"

// User is a registered account. Records are created at registration and
// never updated or deleted by this service.
type User struct {
	ID           string
	Email        string // unique, stored case-sensitively
	PasswordHash string // bcrypt encoded, never serialized
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
