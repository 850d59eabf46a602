package service

import (
	"context"
	"errors"
	"log/slog"

	"linxblog/internal/apperror"
	"linxblog/internal/models"
	"linxblog/internal/repository"
)

const emailInUse = "E-mail already in use."

// ErrUserNotFound is returned by every lookup that finds no user.
var ErrUserNotFound = apperror.NotFound("User not found")

type UserService interface {
	FindByEmail(ctx context.Context, email string) (*models.UserProfile, error)
	FindCredentials(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID int64) (*models.UserProfile, error)
	Create(ctx context.Context, req models.CreateUserRequest) (*models.UserProfile, error)
}

type userService struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	log      *slog.Logger
}

func NewUserService(userRepo repository.UserRepository, hasher PasswordHasher, log *slog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
		log:      log,
	}
}

func (s *userService) FindByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, lookupError(err)
	}

	return user, nil
}

// FindCredentials is the only lookup that returns the password hash.
func (s *userService) FindCredentials(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.GetCredentialsByEmail(ctx, email)
	if err != nil {
		return nil, lookupError(err)
	}

	return user, nil
}

func (s *userService) FindByID(ctx context.Context, userID int64) (*models.UserProfile, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, lookupError(err)
	}

	return user, nil
}

func (s *userService) Create(ctx context.Context, req models.CreateUserRequest) (*models.UserProfile, error) {
	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		s.log.DebugContext(ctx, "registration rejected, email taken", slog.String("email", req.Email))
		return nil, apperror.Conflict(emailInUse)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &models.User{
		Name:         req.Name,
		Lastname:     req.Lastname,
		Email:        req.Email,
		PasswordHash: hash,
	}

	profile, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		// lost a race against a concurrent registration
		if errors.Is(err, repository.ErrDuplicateEmail) {
			s.log.WarnContext(ctx, "duplicate email at insert", slog.String("email", req.Email))
			return nil, apperror.Conflict(emailInUse)
		}
		return nil, apperror.Internal(err)
	}

	s.log.InfoContext(ctx, "user registered", slog.Int64("user_id", profile.ID))

	return profile, nil
}

func lookupError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return apperror.Internal(err)
}
