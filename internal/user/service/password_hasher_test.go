package service

import (
	"strings"
	"testing"

	apperrors "github.com/andriyanto/user-service/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("password123")
	require.NoError(t, err)

	second, err := h.Hash("password123")
	require.NoError(t, err)

	// Salting makes every hash unique, but both must verify.
	assert.NotEqual(t, first, second)

	ok, err := h.Verify("password123", first)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("password123", second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBcryptHasher_LongPassword(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	// 128 characters is the longest accepted password; bcrypt itself only
	// keys on the first 72 bytes, so hashing must not reject the rest.
	long := strings.Repeat("a", 100) + strings.Repeat("b", 28)

	hash, err := h.Hash(long)
	require.NoError(t, err)

	ok, err := h.Verify(long, hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBcryptHasher_Verify_WrongPassword(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("password123")
	require.NoError(t, err)

	ok, err := h.Verify("wrong-password", hash)

	// A mismatch is a clean false, not an error.
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_Verify_CorruptedHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	ok, err := h.Verify("password123", "not-a-bcrypt-hash")

	assert.ErrorIs(t, err, apperrors.ErrCorruptedHash)
	assert.False(t, ok)
}

func TestNewBcryptHasher_DefaultCost(t *testing.T) {
	h := NewBcryptHasher(0)

	hash, err := h.Hash("password123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
