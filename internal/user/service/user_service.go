package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	apperrors "github.com/andriyanto/user-service/internal/errors"
	"github.com/andriyanto/user-service/internal/user/domain"
	"github.com/andriyanto/user-service/internal/user/dto"
	"github.com/andriyanto/user-service/pkg/constant"
	"github.com/google/uuid"
)

type UserService struct {
	repo   domain.UserRepository
	hasher PasswordHasher
	tokens TokenGenerator
}

func NewUserService(repo domain.UserRepository, hasher PasswordHasher, tokens TokenGenerator) *UserService {
	return &UserService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
	}
}

// normalizeEmail canonicalizes case and whitespace so uniqueness checks and
// lookups always compare the same form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", apperrors.ErrValidation)
	}
	// ParseAddress also accepts display-name forms like "John <j@x.com>";
	// only a bare address may be stored.
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: email must be a valid address", apperrors.ErrValidation)
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < constant.MinPasswordLength || len(password) > constant.MaxPasswordLength {
		return fmt.Errorf("%w: password must be between %d and %d characters",
			apperrors.ErrValidation, constant.MinPasswordLength, constant.MaxPasswordLength)
	}
	return nil
}

func validateUserID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: user id is required", apperrors.ErrValidation)
	}
	return nil
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	email := normalizeEmail(input.Email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		// Two concurrent registrations can both pass the lookup above;
		// the unique index on email decides the winner.
		if errors.Is(err, apperrors.ErrDuplicateKey) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, err
	}

	return created, nil
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginOutput, error) {
	email := normalizeEmail(input.Email)

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	// A missing account, a deactivated account and a wrong password are
	// indistinguishable to the caller so account existence never leaks.
	if user == nil || !user.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}

	ok, err := s.hasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.LoginOutput{
		AccessToken: token,
		TokenType:   constant.DefaultTokenType,
		ExpiresIn:   int(s.tokens.Expiry().Seconds()),
		User:        dto.NewUserOutput(user),
	}, nil
}

// GetByID returns the user regardless of active state; soft-deleted records
// stay readable by id.
func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if err := validateUserID(id); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, skip, limit int) (*dto.ListUsersOutput, error) {
	if skip < 0 {
		return nil, fmt.Errorf("%w: skip must be zero or greater", apperrors.ErrValidation)
	}
	if limit < 1 || limit > constant.MaxPageLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", apperrors.ErrValidation, constant.MaxPageLimit)
	}

	users, total, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	out := &dto.ListUsersOutput{
		Users:   make([]dto.UserOutput, 0, len(users)),
		Total:   total,
		Skip:    skip,
		Limit:   limit,
		HasMore: skip+len(users) < total,
	}
	for i := range users {
		out.Users = append(out.Users, dto.NewUserOutput(&users[i]))
	}

	return out, nil
}

// Update mutates the caller's own record. The requester id comes from the
// verified bearer token, so a mismatch with the target id is a Forbidden,
// not an authentication failure.
func (s *UserService) Update(ctx context.Context, requesterID, userID string, input dto.UpdateUserInput) (*domain.User, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	if requesterID != userID {
		return nil, apperrors.ErrForbidden
	}
	if input.Email == nil && input.Password == nil {
		return nil, fmt.Errorf("%w: at least one field must be provided", apperrors.ErrValidation)
	}

	var upd domain.UserUpdate

	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		if err := validateEmail(email); err != nil {
			return nil, err
		}

		existing, err := s.repo.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != userID {
			return nil, apperrors.ErrEmailAlreadyExists
		}

		upd.Email = &email
	}

	if input.Password != nil {
		if err := validatePassword(*input.Password); err != nil {
			return nil, err
		}

		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}

		upd.PasswordHash = &hash
	}

	updated, err := s.repo.Update(ctx, userID, upd)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateKey) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, err
	}

	return updated, nil
}

// Delete soft-deletes the caller's own record and returns the id for
// confirmation. Deleting an already-inactive user succeeds.
func (s *UserService) Delete(ctx context.Context, requesterID, userID string) (string, error) {
	if err := validateUserID(userID); err != nil {
		return "", err
	}
	if requesterID != userID {
		return "", apperrors.ErrForbidden
	}

	user, err := s.repo.SoftDelete(ctx, userID)
	if err != nil {
		return "", err
	}

	return user.ID, nil
}
