package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/andriyanto/user-service/internal/user/service TokenGenerator

import (
	"errors"
	"fmt"
	"time"

	apperrors "github.com/andriyanto/user-service/internal/errors"
	"github.com/golang-jwt/jwt/v5"
)

type TokenGenerator interface {
	Issue(userID string) (string, error)
	Verify(tokenString string) (string, error)
	Expiry() time.Duration
}

type TokenService struct {
	Secret      string
	TokenExpiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

func NewTokenService(secret string, expiryMinutes int) *TokenService {
	return &TokenService{
		Secret:      secret,
		TokenExpiry: time.Duration(expiryMinutes) * time.Minute,
	}
}

// Issue signs a bearer token for the given user id, valid for the configured
// lifetime.
func (ts *TokenService) Issue(userID string) (string, error) {
	now := time.Now()

	claims := JWTCustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.TokenExpiry)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
}

// Verify parses and validates the given token string and returns the subject
// user id. Expiry is a hard boundary; no clock skew is compensated.
func (ts *TokenService) Verify(tokenString string) (string, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.Secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", apperrors.ErrTokenExpired
		}
		return "", apperrors.ErrInvalidToken
	}

	if !token.Valid {
		return "", apperrors.ErrInvalidToken
	}

	return claims.UserID, nil
}

func (ts *TokenService) Expiry() time.Duration {
	return ts.TokenExpiry
}
