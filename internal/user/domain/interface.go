package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/andriyanto/user-service/internal/user/domain UserRepository

import "context"

// UserRepository is the persistence port consumed by the use-case layer.
//
// GetByEmail returns (nil, nil) when no user matches, so callers can do a
// cheap existence check. GetByID, Update and SoftDelete return ErrNotFound
// for an absent id. Create returns ErrDuplicateKey when the email is already
// taken, active or not.
type UserRepository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, skip, limit int) ([]User, int, error)
	Update(ctx context.Context, id string, upd UserUpdate) (*User, error)
	SoftDelete(ctx context.Context, id string) (*User, error)
}
