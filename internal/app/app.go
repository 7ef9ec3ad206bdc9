// Package app assembles the trip planner API from its configuration: the
// database pool, optional schema migrations, repos, services, and the HTTP
// handler. Both the long-running server and the serverless entry point build
// exactly one App per process.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/alefloresc/p2-systems-haniya-gloria/internal/config"
	"github.com/alefloresc/p2-systems-haniya-gloria/internal/handler"
	"github.com/alefloresc/p2-systems-haniya-gloria/internal/repo"
	"github.com/alefloresc/p2-systems-haniya-gloria/internal/service"
	"github.com/alefloresc/p2-systems-haniya-gloria/migrations"
)

// App owns the process-wide store handle and the handler built on it.
type App struct {
	pool    *pgxpool.Pool
	handler http.Handler
}

// New connects to the database, applies migrations when cfg asks for it, and
// wires the HTTP handler. The caller must Close the returned App.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	// pgxpool.New does not open connections; Ping proves the DB is reachable
	// before we accept traffic.
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("app.New: create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("app.New: ping database: %w", err)
	}
	logger.Info("database connection established")

	if cfg.MigrateOnStart {
		if err := migrate(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, fmt.Errorf("app.New: %w", err)
		}
	}

	srv := handler.NewServer(
		service.NewTripService(repo.NewTripRepo(pool)),
		service.NewCityService(repo.NewCityRepo(pool)),
		service.NewActivityService(repo.NewActivityRepo(pool)),
		handler.Options{
			Logger:       logger,
			Development:  cfg.Development(),
			StrictErrors: cfg.StrictErrors,
			MaxBodyBytes: cfg.MaxBodyBytes,
		},
	)

	return &App{pool: pool, handler: srv.Handler()}, nil
}

// Handler returns the fully wired HTTP handler.
func (a *App) Handler() http.Handler { return a.handler }

// Close releases the database pool.
func (a *App) Close() { a.pool.Close() }

// migrate applies every pending embedded migration. goose drives a
// database/sql handle, which stdlib opens on top of the existing pool.
func migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	results, err := migrations.Up(ctx, db)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	for _, r := range results {
		logger.Info("migration applied", "version", r.Source.Version, "duration_ms", r.Duration.Milliseconds())
	}
	return nil
}
