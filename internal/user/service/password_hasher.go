package service

//go:generate mockgen -destination=../../mocks/mock_password_hasher.go -package=mocks github.com/andriyanto/user-service/internal/user/service PasswordHasher

import (
	"errors"
	"fmt"

	apperrors "github.com/andriyanto/user-service/internal/errors"
	"golang.org/x/crypto/bcrypt"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) (bool, error)
}

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// bcrypt keys on at most 72 bytes. Longer passwords are truncated rather
// than rejected; truncation must happen on both hash and verify so the
// stored hash stays comparable.
const maxBcryptInput = 72

func bcryptInput(password string) []byte {
	b := []byte(password)
	if len(b) > maxBcryptInput {
		b = b[:maxBcryptInput]
	}
	return b
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(bcryptInput(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether password matches the stored hash. A wrong password
// is (false, nil); a stored hash that bcrypt cannot parse is an integrity
// error so callers can tell it apart from a failed login.
func (h *BcryptHasher) Verify(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), bcryptInput(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", apperrors.ErrCorruptedHash, err)
	}
}
