// Package seed creates the demo accounts and their first posts.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"linxblog/internal/apperror"
	"linxblog/internal/models"
	"linxblog/internal/service"
)

const DefaultPassword = "password"

type Account struct {
	Name      string
	Lastname  string
	Email     string
	PostTitle string
}

var DefaultAccounts = []Account{
	{Name: "Admin", Lastname: "User", Email: "admin@linx.com", PostTitle: "Postagem Admin"},
	{Name: "Cristiano", Lastname: "Junior", Email: "cristiano.junior@linx.com", PostTitle: "Postagem User"},
}

// Run is idempotent: existing accounts are reused and a post is only created
// for an account that has none.
func Run(ctx context.Context, users service.UserService, posts service.PostService, accounts []Account, password string, log *slog.Logger) error {
	for _, acc := range accounts {
		user, err := ensureUser(ctx, users, acc, password)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", acc.Email, err)
		}

		page, err := posts.ListForOwner(ctx, user.ID, 1, 1)
		if err != nil {
			return fmt.Errorf("list posts of %s: %w", acc.Email, err)
		}

		if page.Pagination.Total > 0 {
			log.InfoContext(ctx, "user already has posts", slog.String("email", acc.Email))
			continue
		}

		post, err := posts.Create(ctx, user.ID, models.PostInput{Title: acc.PostTitle})
		if err != nil {
			return fmt.Errorf("seed post for %s: %w", acc.Email, err)
		}

		log.InfoContext(ctx, "post seeded", slog.String("email", acc.Email), slog.Int64("post_id", post.ID))
	}

	return nil
}

func ensureUser(ctx context.Context, users service.UserService, acc Account, password string) (*models.UserProfile, error) {
	user, err := users.Create(ctx, models.CreateUserRequest{
		Name:     acc.Name,
		Lastname: acc.Lastname,
		Email:    acc.Email,
		Password: password,
	})
	if err == nil {
		return user, nil
	}

	if !apperror.IsKind(err, apperror.KindConflict) {
		return nil, err
	}

	return users.FindByEmail(ctx, acc.Email)
}
