package service

import (
	"context"
	"errors"
	"log/slog"

	"linxblog/internal/apperror"
	"linxblog/internal/models"
)

const (
	msgInvalidEmail  = "E-mail inválido."
	msgWrongPassword = "Senha incorreta."
)

type AuthService interface {
	Register(ctx context.Context, req models.CreateUserRequest) (*models.UserProfile, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
}

type authService struct {
	users  UserService
	hasher PasswordHasher
	tokens TokenService
	log    *slog.Logger
}

func NewAuthService(users UserService, hasher PasswordHasher, tokens TokenService, log *slog.Logger) AuthService {
	return &authService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		log:    log,
	}
}

func (s *authService) Register(ctx context.Context, req models.CreateUserRequest) (*models.UserProfile, error) {
	return s.users.Create(ctx, req)
}

func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.users.FindCredentials(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperror.Unauthorized(msgInvalidEmail)
		}
		return nil, err
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		s.log.DebugContext(ctx, "login rejected, wrong password", slog.Int64("user_id", user.ID))
		return nil, apperror.Unauthorized(msgWrongPassword)
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &models.LoginResponse{
		AccessToken: token,
		User:        user.Public(),
	}, nil
}
