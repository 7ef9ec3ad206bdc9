// Package repo contains all database access logic for the trip planner API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/alefloresc/p2-systems-haniya-gloria/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
// Begin on a pgx.Tx opens a savepoint, so nested writes stay isolated too.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TripRepo defines the persistence operations for Trips.
type TripRepo interface {
	// Create inserts a trip and all of its cities in one transaction and
	// returns the persisted trip with cities (each with an empty activity list).
	Create(ctx context.Context, trip domain.NewTrip) (domain.Trip, error)

	// ListWithChildren returns every trip with its cities and their activities.
	ListWithChildren(ctx context.Context) ([]domain.Trip, error)

	// Delete removes a trip by ID; cities and activities go with it through
	// the schema's cascading foreign keys. Returns domain.ErrNotFound if no
	// trip with that ID exists.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, name, created_at, updated_at`

// Create inserts the trip row, then each city row, inside a transaction.
func (r *pgTripRepo) Create(ctx context.Context, in domain.NewTrip) (domain.Trip, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: begin: %w", err)
	}
	// Rollback after a successful Commit is a no-op.
	defer func() { _ = tx.Rollback(ctx) }()

	const q = `
		INSERT INTO trips (name)
		VALUES (@name)
		RETURNING ` + tripColumns

	trip, err := scanTrip(tx.QueryRow(ctx, q, pgx.NamedArgs{"name": in.Name}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", classify(err))
	}

	trip.Cities = make([]domain.City, 0, len(in.Cities))
	for _, nc := range in.Cities {
		nc.TripID = trip.ID
		city, err := insertCity(ctx, tx, nc)
		if err != nil {
			return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: city: %w", err)
		}
		trip.Cities = append(trip.Cities, city)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: commit: %w", classify(err))
	}
	return trip, nil
}

// ListWithChildren loads trips, cities, and activities with one query each
// and stitches them together in memory. Children are ordered by creation time.
func (r *pgTripRepo) ListWithChildren(ctx context.Context) ([]domain.Trip, error) {
	trips, err := r.listTrips(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListWithChildren: %w", err)
	}
	cities, err := listAllCities(ctx, r.db)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListWithChildren: %w", err)
	}
	activities, err := listAllActivities(ctx, r.db)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListWithChildren: %w", err)
	}

	byCity := make(map[uuid.UUID][]domain.Activity, len(cities))
	for _, a := range activities {
		byCity[a.CityID] = append(byCity[a.CityID], a)
	}
	byTrip := make(map[uuid.UUID][]domain.City, len(trips))
	for _, c := range cities {
		c.Activities = byCity[c.ID]
		if c.Activities == nil {
			c.Activities = []domain.Activity{}
		}
		byTrip[c.TripID] = append(byTrip[c.TripID], c)
	}
	for i := range trips {
		trips[i].Cities = byTrip[trips[i].ID]
		if trips[i].Cities == nil {
			trips[i].Cities = []domain.City{}
		}
	}
	return trips, nil
}

func (r *pgTripRepo) listTrips(ctx context.Context) ([]domain.Trip, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("trips: %w", classify(err))
	}
	defer rows.Close()

	trips := []domain.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("trips: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("trips: rows: %w", err)
	}
	return trips, nil
}

// Delete removes a trip by primary key.
func (r *pgTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", classify(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single row into a domain.Trip with no cities loaded.
func scanTrip(s scanner) (domain.Trip, error) {
	var t domain.Trip
	if err := s.Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return domain.Trip{}, classify(err)
	}
	return t, nil
}
