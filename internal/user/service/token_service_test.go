package service

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	apperrors "github.com/andriyanto/user-service/internal/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService(t *testing.T) {
	tests := []struct {
		name          string
		secret        string
		expiryMinutes int
	}{
		{
			name:          "valid parameters",
			secret:        "secret-key",
			expiryMinutes: 30,
		},
		{
			name:          "empty secret",
			secret:        "",
			expiryMinutes: 15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenService(tt.secret, tt.expiryMinutes)

			assert.NotNil(t, ts)
			assert.Equal(t, tt.secret, ts.Secret)
			assert.Equal(t, time.Duration(tt.expiryMinutes)*time.Minute, ts.TokenExpiry)
			assert.Equal(t, ts.TokenExpiry, ts.Expiry())
		})
	}
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	ts := NewTokenService("test-secret-key-123", 30)

	token, err := ts.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ts.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestTokenService_Issue_ClaimsContent(t *testing.T) {
	ts := NewTokenService("test-secret-key-123", 30)
	before := time.Now()

	token, err := ts.Issue("user-123")
	require.NoError(t, err)

	claims := &JWTCustomClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(ts.Secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "user-123", claims.Subject)
	assert.WithinDuration(t, before, claims.IssuedAt.Time, 2*time.Second)
	assert.WithinDuration(t, before.Add(30*time.Minute), claims.ExpiresAt.Time, 2*time.Second)
}

func TestTokenService_Verify_Expired(t *testing.T) {
	// A negative lifetime produces a token that is already past its expiry.
	ts := NewTokenService("test-secret-key-123", -1)

	token, err := ts.Issue("user-123")
	require.NoError(t, err)

	userID, err := ts.Verify(token)

	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
	assert.Empty(t, userID)
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	issuer := NewTokenService("issuer-secret", 30)
	verifier := NewTokenService("different-secret", 30)

	token, err := issuer.Issue("user-123")
	require.NoError(t, err)

	userID, err := verifier.Verify(token)

	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	assert.Empty(t, userID)
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	ts := NewTokenService("test-secret-key-123", 30)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty string", token: ""},
		{name: "garbage", token: "not-a-jwt"},
		{name: "truncated", token: "eyJhbGciOiJIUzI1NiJ9.eyJzdWIi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, err := ts.Verify(tt.token)

			assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
			assert.Empty(t, userID)
		})
	}
}

func TestTokenService_Verify_RejectsNonHMAC(t *testing.T) {
	ts := NewTokenService("test-secret-key-123", 30)

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	claims := JWTCustomClaims{
		UserID: "user-123",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)

	userID, err := ts.Verify(token)

	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	assert.Empty(t, userID)
}
