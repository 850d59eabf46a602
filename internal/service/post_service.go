package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"

	"linxblog/internal/apperror"
	"linxblog/internal/models"
	"linxblog/internal/repository"
)

const (
	msgUnauthorizedAction = "Unauthorized action"
	msgInvalidPage        = "Page must be greater than 0"
	msgInvalidPerPage     = "PerPage must be greater than 0"
)

type PostPage = models.PaginatedResult[models.PostWithOwner]

type PostService interface {
	Create(ctx context.Context, ownerID int64, input models.PostInput) (*models.Post, error)
	GetByID(ctx context.Context, postID int64) (*models.PostWithOwner, error)
	List(ctx context.Context, page, perPage int) (*PostPage, error)
	ListForOwner(ctx context.Context, ownerID int64, page, perPage int) (*PostPage, error)
	Update(ctx context.Context, requesterID, postID int64, input models.PostInput) (*models.Post, error)
	Remove(ctx context.Context, requesterID, postID int64) error
}

type postService struct {
	postRepo repository.PostRepository
	log      *slog.Logger
}

func NewPostService(postRepo repository.PostRepository, log *slog.Logger) PostService {
	return &postService{
		postRepo: postRepo,
		log:      log,
	}
}

func postNotFound(postID int64) *apperror.Error {
	return apperror.NotFound(fmt.Sprintf("Post with ID %d not found", postID))
}

func (s *postService) Create(ctx context.Context, ownerID int64, input models.PostInput) (*models.Post, error) {
	post := &models.Post{
		Title:  input.Title,
		UserID: ownerID,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, apperror.Internal(err)
	}

	s.log.DebugContext(ctx, "post created", slog.Int64("post_id", post.ID), slog.Int64("user_id", ownerID))

	return post, nil
}

func (s *postService) GetByID(ctx context.Context, postID int64) (*models.PostWithOwner, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, postNotFound(postID)
		}
		return nil, apperror.Internal(err)
	}

	return post, nil
}

func (s *postService) List(ctx context.Context, page, perPage int) (*PostPage, error) {
	return s.paginate(ctx, repository.PostFilter{}, page, perPage)
}

func (s *postService) ListForOwner(ctx context.Context, ownerID int64, page, perPage int) (*PostPage, error) {
	return s.paginate(ctx, repository.PostFilter{OwnerID: &ownerID}, page, perPage)
}

// paginate fetches one page and the matching total concurrently.
func (s *postService) paginate(ctx context.Context, filter repository.PostFilter, page, perPage int) (*PostPage, error) {
	if page < 1 {
		return nil, apperror.Validation(msgInvalidPage)
	}
	if perPage < 1 {
		return nil, apperror.Validation(msgInvalidPerPage)
	}

	var (
		posts = []models.PostWithOwner{}
		total int
	)

	g, gctx := errgroup.WithContext(ctx)

	// an offset past math.MaxInt cannot hold any row
	if page-1 <= math.MaxInt/perPage {
		g.Go(func() error {
			var err error
			posts, err = s.postRepo.List(gctx, filter, perPage, (page-1)*perPage)
			return err
		})
	}

	g.Go(func() error {
		var err error
		total, err = s.postRepo.Count(gctx, filter)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, apperror.Internal(err)
	}

	return &PostPage{
		Data:       posts,
		Pagination: models.NewPagination(page, perPage, total),
	}, nil
}

// authorize loads the live post and checks that requesterID owns it.
func (s *postService) authorize(ctx context.Context, requesterID, postID int64) error {
	post, err := s.postRepo.FindLive(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return postNotFound(postID)
		}
		return apperror.Internal(err)
	}

	if post.UserID != requesterID {
		s.log.WarnContext(ctx, "post ownership mismatch",
			slog.Int64("post_id", postID),
			slog.Int64("user_id", requesterID),
		)
		return apperror.Unauthorized(msgUnauthorizedAction)
	}

	return nil
}

func (s *postService) Update(ctx context.Context, requesterID, postID int64, input models.PostInput) (*models.Post, error) {
	if err := s.authorize(ctx, requesterID, postID); err != nil {
		return nil, err
	}

	post, err := s.postRepo.UpdateTitle(ctx, postID, requesterID, input.Title)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, postNotFound(postID)
		}
		return nil, apperror.Internal(err)
	}

	return post, nil
}

func (s *postService) Remove(ctx context.Context, requesterID, postID int64) error {
	if err := s.authorize(ctx, requesterID, postID); err != nil {
		return err
	}

	if err := s.postRepo.SoftDelete(ctx, postID, requesterID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return postNotFound(postID)
		}
		return apperror.Internal(err)
	}

	s.log.DebugContext(ctx, "post removed", slog.Int64("post_id", postID))

	return nil
}
