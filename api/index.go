// Package api is the serverless entry point. The platform calls Handler for
// every request; the App behind it is built on the first successful call and
// reused for the life of the process.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/alefloresc/p2-systems-haniya-gloria/internal/app"
	"github.com/alefloresc/p2-systems-haniya-gloria/internal/config"
	"github.com/alefloresc/p2-systems-haniya-gloria/internal/middleware"
)

var (
	mu      sync.Mutex
	handler http.Handler

	// build constructs the handler; tests replace it.
	build = buildApp
)

// Handler serves one request through the shared App. If the App cannot be
// built the request gets a 500 and the next request tries again.
func Handler(w http.ResponseWriter, r *http.Request) {
	h, err := current(r.Context())
	if err != nil {
		unavailable(err).ServeHTTP(w, r)
		return
	}
	h.ServeHTTP(w, r)
}

// current returns the cached handler, building it first if needed. Only a
// successful build is cached. Concurrent cold requests wait on one build.
func current(ctx context.Context) (http.Handler, error) {
	mu.Lock()
	defer mu.Unlock()

	if handler != nil {
		return handler, nil
	}
	h, err := build(ctx)
	if err != nil {
		return nil, err
	}
	handler = h
	return h, nil
}

// unavailable answers with the outer-tier 500 envelope. It carries the CORS
// headers so browsers surface the 500 instead of a CORS error.
func unavailable(err error) http.Handler {
	return middleware.NewCORSHandler()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.ErrorContext(r.Context(), "serverless init failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error":   "Internal server error",
			"message": err.Error(),
		})
	}))
}

// buildApp loads configuration and constructs the App. The pool it opens
// lives until the platform recycles the process.
func buildApp(ctx context.Context) (http.Handler, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := app.NewLogger(cfg.LogLevel, os.Stdout)
	slog.SetDefault(logger)

	// The request context is cancelled when the first request ends, so the
	// pool must not inherit it.
	a, err := app.New(context.WithoutCancel(ctx), cfg, logger)
	if err != nil {
		return nil, err
	}
	return a.Handler(), nil
}
