package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"linxblog/cmd/app"
	"linxblog/internal/config"
	"linxblog/internal/logger"
	"linxblog/internal/seed"
)

func main() {
	password := flag.String("password", seed.DefaultPassword, "password for the seeded accounts")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.New(os.Stdout, cfg.IsDevelopment())

	// token issuing is never exercised here but the service graph requires a key
	if cfg.JWTSecretKey == "" {
		cfg.JWTSecretKey = "seed"
	}

	if err := run(context.Background(), cfg, log, *password); err != nil {
		log.Error("seeding failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("seeding completed", slog.Int("accounts", len(seed.DefaultAccounts)))
}

// run owns the app lifetime so the connection is closed before main exits.
func run(ctx context.Context, cfg *config.Config, log *slog.Logger, password string) error {
	a, err := app.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	return seed.Run(ctx, a.Services.User, a.Services.Post, seed.DefaultAccounts, password, log)
}
