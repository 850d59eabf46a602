package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"linxblog/internal/models"
)

const uniqueViolation = "23505"

// profileColumns never include password_hash.
const profileColumns = `id, name, lastname, email, email_verified_at, deleted_at, created_at, updated_at`

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateUser inserts a user whose PasswordHash is already set and returns the
// stored row without the credential.
func (r *userRepository) CreateUser(ctx context.Context, user *models.User) (*models.UserProfile, error) {
	query := `
		INSERT INTO users (name, lastname, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + profileColumns

	var profile models.UserProfile
	err := r.db.GetContext(ctx, &profile, query, user.Name, user.Lastname, user.Email, user.PasswordHash)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return &profile, nil
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool

	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`

	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}

	return exists, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (*models.UserProfile, error) {
	var user models.UserProfile

	query := `SELECT ` + profileColumns + ` FROM users WHERE id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user %d: %w", userID, err)
	}

	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	var user models.UserProfile

	query := `SELECT ` + profileColumns + ` FROM users WHERE email = $1`

	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetCredentialsByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	query := `SELECT ` + profileColumns + `, password_hash FROM users WHERE email = $1`

	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get credentials by email: %w", err)
	}

	return &user, nil
}
