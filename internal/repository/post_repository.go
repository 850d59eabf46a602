package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"linxblog/internal/models"
)

// livePost is the soft-delete predicate shared by every read path.
const livePost = "p.deleted_at IS NULL"

const postColumns = `p.id, p.title, p.user_id, p.created_at, p.updated_at, p.deleted_at`

const postWithOwnerSelect = `
	SELECT ` + postColumns + `,
		u.id AS "user.id", u.name AS "user.name", u.lastname AS "user.lastname", u.email AS "user.email"
	FROM posts p
	JOIN users u ON u.id = p.user_id`

type PostRepositoryImpl struct {
	DB *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{DB: db}
}

// where renders the filter as a WHERE clause with positional arguments.
func (f PostFilter) where() (string, []any) {
	conds := []string{livePost}
	var args []any

	if f.OwnerID != nil {
		args = append(args, *f.OwnerID)
		conds = append(conds, fmt.Sprintf("p.user_id = $%d", len(args)))
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts AS p (title, user_id)
		VALUES ($1, $2)
		RETURNING ` + postColumns

	err := r.DB.GetContext(ctx, post, query, post.Title, post.UserID)
	if err != nil {
		return fmt.Errorf("create post: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID int64) (*models.PostWithOwner, error) {
	query := postWithOwnerSelect + ` WHERE p.id = $1 AND ` + livePost

	var post models.PostWithOwner
	err := r.DB.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get post %d: %w", postID, err)
	}

	return &post, nil
}

// FindLive loads a post without its owner; used for existence and ownership checks.
func (r *PostRepositoryImpl) FindLive(ctx context.Context, postID int64) (*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts p WHERE p.id = $1 AND ` + livePost

	var post models.Post
	err := r.DB.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find post %d: %w", postID, err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) List(ctx context.Context, filter PostFilter, limit, offset int) ([]models.PostWithOwner, error) {
	where, args := filter.where()
	args = append(args, limit, offset)

	query := postWithOwnerSelect + where +
		fmt.Sprintf(" ORDER BY p.created_at DESC, p.id DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	posts := []models.PostWithOwner{}
	if err := r.DB.SelectContext(ctx, &posts, query, args...); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) Count(ctx context.Context, filter PostFilter) (int, error) {
	where, args := filter.where()

	var total int
	if err := r.DB.GetContext(ctx, &total, `SELECT COUNT(*) FROM posts p`+where, args...); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}

	return total, nil
}

// UpdateTitle changes the title of a live post owned by ownerID.
func (r *PostRepositoryImpl) UpdateTitle(ctx context.Context, postID, ownerID int64, title string) (*models.Post, error) {
	query := `
		UPDATE posts AS p SET
			title = $1,
			updated_at = now()
		WHERE p.id = $2 AND p.user_id = $3 AND ` + livePost + `
		RETURNING ` + postColumns

	var post models.Post
	err := r.DB.GetContext(ctx, &post, query, title, postID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update post %d: %w", postID, err)
	}

	return &post, nil
}

// SoftDelete stamps deleted_at; rows are never physically removed.
func (r *PostRepositoryImpl) SoftDelete(ctx context.Context, postID, ownerID int64) error {
	query := `
		UPDATE posts AS p SET
			deleted_at = now()
		WHERE p.id = $1 AND p.user_id = $2 AND ` + livePost

	result, err := r.DB.ExecContext(ctx, query, postID, ownerID)
	if err != nil {
		return fmt.Errorf("delete post %d: %w", postID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
