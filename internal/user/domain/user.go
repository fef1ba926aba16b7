package domain

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserUpdate carries the mutable fields of a user record.
// A nil field is left unchanged.
type UserUpdate struct {
	Email        *string
	PasswordHash *string
}
