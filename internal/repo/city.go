package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/alefloresc/p2-systems-haniya-gloria/internal/domain"
)

// CityRepo defines the persistence operations for Cities.
type CityRepo interface {
	// Create inserts a city under city.TripID and returns the persisted record
	// with an empty activity list. city.Position must already be resolved.
	// A missing trip surfaces as domain.ErrConstraint.
	Create(ctx context.Context, city domain.NewCity) (domain.City, error)

	// UpdatePosition overwrites the coordinates that are non-nil in patch and
	// returns the city with its activities. Returns domain.ErrNotFound if no
	// city with that ID exists.
	UpdatePosition(ctx context.Context, patch domain.CityPositionPatch) (domain.City, error)

	// Delete removes a city by ID together with its activities.
	// Returns domain.ErrNotFound if no city with that ID exists.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgCityRepo is the Postgres implementation of CityRepo.
type pgCityRepo struct {
	db db
}

// NewCityRepo constructs a CityRepo backed by the provided db connection.
func NewCityRepo(db db) CityRepo {
	return &pgCityRepo{db: db}
}

const cityColumns = `id, trip_id, name, transport, start_date, end_date, pos_x, pos_y, created_at, updated_at`

func (r *pgCityRepo) Create(ctx context.Context, city domain.NewCity) (domain.City, error) {
	result, err := insertCity(ctx, r.db, city)
	if err != nil {
		return domain.City{}, fmt.Errorf("repo.CityRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgCityRepo) UpdatePosition(ctx context.Context, patch domain.CityPositionPatch) (domain.City, error) {
	const q = `
		UPDATE cities
		SET pos_x      = COALESCE(@pos_x, pos_x),
		    pos_y      = COALESCE(@pos_y, pos_y),
		    updated_at = now()
		WHERE id = @id
		RETURNING ` + cityColumns

	args := pgx.NamedArgs{
		"id":    patch.ID,
		"pos_x": patch.PosX, // nil becomes NULL, which keeps the stored value
		"pos_y": patch.PosY,
	}

	city, err := scanCity(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.City{}, fmt.Errorf("repo.CityRepo.UpdatePosition: %w", err)
	}

	city.Activities, err = listActivitiesByCity(ctx, r.db, city.ID)
	if err != nil {
		return domain.City{}, fmt.Errorf("repo.CityRepo.UpdatePosition: %w", err)
	}
	return city, nil
}

func (r *pgCityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM cities WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.CityRepo.Delete: %w", classify(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.CityRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// insertCity is shared by CityRepo.Create and the nested insert in
// TripRepo.Create, which passes its transaction as q. The position is stored
// as given; callers resolve defaults first (domain.NewCity.WithDefaults).
func insertCity(ctx context.Context, q db, city domain.NewCity) (domain.City, error) {
	const stmt = `
		INSERT INTO cities (trip_id, name, transport, start_date, end_date, pos_x, pos_y)
		VALUES (@trip_id, @name, @transport, @start_date, @end_date, @pos_x, @pos_y)
		RETURNING ` + cityColumns

	// An unresolved coordinate is NULL and rejected by the NOT NULL column.
	var x, y *float64
	if city.Position != nil {
		x, y = city.Position.X, city.Position.Y
	}
	args := pgx.NamedArgs{
		"trip_id":    city.TripID,
		"name":       city.Name, // nil becomes NULL and trips the NOT NULL constraint
		"transport":  city.Transport,
		"start_date": city.StartDate,
		"end_date":   city.EndDate,
		"pos_x":      x,
		"pos_y":      y,
	}

	result, err := scanCity(q.QueryRow(ctx, stmt, args))
	if err != nil {
		return domain.City{}, err
	}
	result.Activities = []domain.Activity{}
	return result, nil
}

func listAllCities(ctx context.Context, q db) ([]domain.City, error) {
	const stmt = `
		SELECT ` + cityColumns + `
		FROM cities
		ORDER BY created_at, id`

	rows, err := q.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("cities: %w", classify(err))
	}
	defer rows.Close()

	var cities []domain.City
	for rows.Next() {
		c, err := scanCity(rows)
		if err != nil {
			return nil, fmt.Errorf("cities: scan: %w", err)
		}
		cities = append(cities, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("cities: rows: %w", err)
	}
	return cities, nil
}

// scanCity maps a single row into a domain.City with no activities loaded.
func scanCity(s scanner) (domain.City, error) {
	var c domain.City
	err := s.Scan(&c.ID, &c.TripID, &c.Name, &c.Transport, &c.StartDate, &c.EndDate,
		&c.PosX, &c.PosY, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.City{}, classify(err)
	}
	return c, nil
}
