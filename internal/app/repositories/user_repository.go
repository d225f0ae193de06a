package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/enrolldesk/enrolldesk/internal/app/models"
	"github.com/enrolldesk/enrolldesk/internal/pkg/apperrors"
	"github.com/enrolldesk/enrolldesk/internal/pkg/dberrors"
)

// UserRepository handles database operations for accounts
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create inserts a new account. Duplicate usernames map to
// ErrUsernameAlreadyUsed.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, password, full_name, email, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		user.Username,
		user.Password,
		user.FullName,
		user.Email,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrUsernameAlreadyUsed
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByUsername retrieves an account by its login name.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, password, full_name, email, role, created_at
		FROM users
		WHERE username = $1
	`

	var u models.User
	err := r.db.QueryRow(ctx, query, username).Scan(
		&u.ID,
		&u.Username,
		&u.Password,
		&u.FullName,
		&u.Email,
		&u.Role,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &u, nil
}

// UsernameExists reports whether an account with the given login name exists.
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking username: %w", err)
	}
	return exists, nil
}
