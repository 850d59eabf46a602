package service

import (
	"fmt"
	"log/slog"

	"linxblog/internal/config"
	"linxblog/internal/repository"
)

type Service struct {
	User   UserService
	Post   PostService
	Auth   AuthService
	Tables TablesService
	Tokens TokenService
}

func NewService(rep *repository.Repository, cfg *config.Config, log *slog.Logger) (*Service, error) {
	tokens, err := NewTokenService(cfg.JWTSecretKey, cfg.AccessTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("token service: %w", err)
	}

	hasher := NewPasswordHasher(cfg.BcryptCost)
	users := NewUserService(rep.User, hasher, log)

	return &Service{
		User:   users,
		Post:   NewPostService(rep.Post, log),
		Auth:   NewAuthService(users, hasher, tokens, log),
		Tables: NewTablesService(rep.Tables),
		Tokens: tokens,
	}, nil
}
