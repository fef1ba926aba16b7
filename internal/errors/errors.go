package errors

import (
	"errors"
)

var (
	ErrValidation            = errors.New("validation failed")
	ErrEmailAlreadyExists    = errors.New("email already in use")
	ErrNotFound              = errors.New("user not found")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidToken          = errors.New("invalid token")
	ErrTokenExpired          = errors.New("token expired")
	ErrForbidden             = errors.New("operation not permitted")
	ErrDuplicateKey          = errors.New("duplicate key")
	ErrCorruptedHash         = errors.New("corrupted password hash")
	ErrRepositoryUnavailable = errors.New("repository unavailable")
)
