package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"linxblog/internal/config"
	"linxblog/internal/database"
	handlers "linxblog/internal/handler"
	"linxblog/internal/metrics"
	"linxblog/internal/middleware"
	"linxblog/internal/repository"
	"linxblog/internal/service"
)

// App owns the process-wide dependencies.
type App struct {
	Cfg      *config.Config
	Log      *slog.Logger
	DB       *database.DB
	Repo     *repository.Repository
	Services *service.Service
	Metrics  *metrics.Metrics
}

// New connects to the database, applies migrations and wires the services.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	db, err := database.ConnectDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	repo := repository.NewRepository(db.DB)

	services, err := service.NewService(repo, cfg, log)
	if err != nil {
		db.CloseDB()
		return nil, err
	}

	return &App{
		Cfg:      cfg,
		Log:      log,
		DB:       db,
		Repo:     repo,
		Services: services,
		Metrics:  metrics.New(),
	}, nil
}

func (a *App) Handler() http.Handler {
	return NewHandler(a.Cfg, a.Log, a.Services, a.Metrics)
}

func (a *App) Close() error {
	return a.DB.CloseDB()
}

// NewHandler wraps the router with the server-wide middleware. The first
// middleware listed is the outermost.
func NewHandler(cfg *config.Config, log *slog.Logger, services *service.Service, m *metrics.Metrics) http.Handler {
	h := handlers.NewHandlers(services, log)
	router := handlers.NewRouter(h, services.Tokens, m)

	return middleware.Chain(router,
		chimw.RequestID,
		middleware.RequestLogger(log),
		middleware.Recoverer(log),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.RateLimit(middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)),
	)
}
