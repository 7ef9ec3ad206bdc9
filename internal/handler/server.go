// Package handler implements the HTTP surface of the trip planner API.
// All handlers are methods on Server. Methods are split into resource files
// (trip.go, city.go, activity.go) but share the Server's dependencies, and
// router.go declares the route table that binds them to paths.
package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/alefloresc/p2-systems-haniya-gloria/internal/domain"
)

// TripServicer defines the trip operations the handlers depend on.
// Interfaces live here, in the consumer package, so tests can inject mocks.
type TripServicer interface {
	Create(ctx context.Context, trip domain.NewTrip) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CityServicer defines the city operations the handlers depend on.
type CityServicer interface {
	Create(ctx context.Context, city domain.NewCity) (domain.City, error)
	UpdatePosition(ctx context.Context, patch domain.CityPositionPatch) (domain.City, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ActivityServicer defines the activity operations the handlers depend on.
type ActivityServicer interface {
	Create(ctx context.Context, activity domain.NewActivity) (domain.Activity, error)
	Update(ctx context.Context, patch domain.ActivityPatch) (domain.Activity, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Options configures behavior that does not come from the services.
type Options struct {
	// Logger receives per-branch success/failure lines. Defaults to slog.Default().
	Logger *slog.Logger

	// Development echoes stack traces in 500 responses.
	Development bool

	// StrictErrors maps not-found and constraint failures to 404 and 409 on
	// every operation instead of the default 500s.
	StrictErrors bool

	// MaxBodyBytes caps request bodies; <= 0 disables the cap.
	MaxBodyBytes int64

	// Now overrides the clock used by the health echo. Defaults to time.Now.
	Now func() time.Time
}

// Server holds the services and options every handler needs.
type Server struct {
	trips      TripServicer
	cities     CityServicer
	activities ActivityServicer

	log         *slog.Logger
	development bool
	strict      bool
	maxBody     int64
	now         func() time.Time
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, cities CityServicer, activities ActivityServicer, opts Options) *Server {
	s := &Server{
		trips:       trips,
		cities:      cities,
		activities:  activities,
		log:         opts.Logger,
		development: opts.Development,
		strict:      opts.StrictErrors,
		maxBody:     opts.MaxBodyBytes,
		now:         opts.Now,
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}
