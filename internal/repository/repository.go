package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"linxblog/internal/models"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (*models.UserProfile, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	GetUserByID(ctx context.Context, userID int64) (*models.UserProfile, error)
	GetUserByEmail(ctx context.Context, email string) (*models.UserProfile, error)
	GetCredentialsByEmail(ctx context.Context, email string) (*models.User, error)
}

// PostFilter narrows post listings. Soft-deleted posts are always excluded.
type PostFilter struct {
	OwnerID *int64
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID int64) (*models.PostWithOwner, error)
	FindLive(ctx context.Context, postID int64) (*models.Post, error)
	List(ctx context.Context, filter PostFilter, limit, offset int) ([]models.PostWithOwner, error)
	Count(ctx context.Context, filter PostFilter) (int, error)
	UpdateTitle(ctx context.Context, postID, ownerID int64, title string) (*models.Post, error)
	SoftDelete(ctx context.Context, postID, ownerID int64) error
}

type TablesRepository interface {
	Ping(ctx context.Context) error
	CountTablesDB(ctx context.Context) (int, error)
}

type Repository struct {
	User   UserRepository
	Post   PostRepository
	Tables TablesRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:   NewUserRepository(db),
		Post:   NewPostRepository(db),
		Tables: NewTablesRepository(db),
	}
}
