package postgres

import (
	"context"
	"errors"
	"fmt"

	apperrors "github.com/andriyanto/user-service/internal/errors"
	"github.com/andriyanto/user-service/internal/user/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxPool is the subset of pgxpool.Pool the repository uses. pgxmock
// implements the same methods in tests.
type PgxPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db PgxPool
}

var _ domain.UserRepository = (*PostgresRepository)(nil)

func NewPostgresRepository(db PgxPool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const uniqueViolationCode = "23505"

func isDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.IsActive, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, user.ID, user.Email, user.PasswordHash, user.IsActive, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, apperrors.ErrDuplicateKey
		}

		return nil, fmt.Errorf("%w: failed to insert user: %v", apperrors.ErrRepositoryUnavailable, err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, is_active, created_at, updated_at
		FROM users
		WHERE id = $1
		LIMIT 1
	`, id)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}

		return nil, fmt.Errorf("%w: failed to get user by id: %v", apperrors.ErrRepositoryUnavailable, err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, is_active, created_at, updated_at
		FROM users
		WHERE email = $1
		LIMIT 1
	`, email)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("%w: failed to get user by email: %v", apperrors.ErrRepositoryUnavailable, err)
	}

	return user, nil
}

func (r *PostgresRepository) List(ctx context.Context, skip, limit int) ([]domain.User, int, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, email, password_hash, is_active, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2
	`, skip, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: failed to list users: %v", apperrors.ErrRepositoryUnavailable, err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.IsActive,
			&user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("%w: failed to scan user row: %v", apperrors.ErrRepositoryUnavailable, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: failed to read user rows: %v", apperrors.ErrRepositoryUnavailable, err)
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: failed to count users: %v", apperrors.ErrRepositoryUnavailable, err)
	}

	return users, total, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, upd domain.UserUpdate) (*domain.User, error) {
	// Nil fields arrive as NULL and COALESCE keeps the stored value.
	row := r.db.QueryRow(ctx, `
		UPDATE users
		SET email = COALESCE($2, email),
		    password_hash = COALESCE($3, password_hash),
		    updated_at = now()
		WHERE id = $1
		RETURNING id, email, password_hash, is_active, created_at, updated_at
	`, id, upd.Email, upd.PasswordHash)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		if isDuplicateKey(err) {
			return nil, apperrors.ErrDuplicateKey
		}

		return nil, fmt.Errorf("%w: failed to update user: %v", apperrors.ErrRepositoryUnavailable, err)
	}

	return user, nil
}

func (r *PostgresRepository) SoftDelete(ctx context.Context, id string) (*domain.User, error) {
	// Re-deleting an inactive user returns the current state untouched,
	// including updated_at.
	row := r.db.QueryRow(ctx, `
		UPDATE users
		SET updated_at = CASE WHEN is_active THEN now() ELSE updated_at END,
		    is_active = false
		WHERE id = $1
		RETURNING id, email, password_hash, is_active, created_at, updated_at
	`, id)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}

		return nil, fmt.Errorf("%w: failed to soft-delete user: %v", apperrors.ErrRepositoryUnavailable, err)
	}

	return user, nil
}
