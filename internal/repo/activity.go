package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/alefloresc/p2-systems-haniya-gloria/internal/domain"
)

// ActivityRepo defines the persistence operations for Activities.
type ActivityRepo interface {
	// Create inserts an activity under activity.CityID and returns the
	// persisted record. A missing city surfaces as domain.ErrConstraint.
	Create(ctx context.Context, activity domain.NewActivity) (domain.Activity, error)

	// Update overwrites the fields that are non-nil in patch and returns the
	// updated record. Returns domain.ErrNotFound if no activity with that ID exists.
	Update(ctx context.Context, patch domain.ActivityPatch) (domain.Activity, error)

	// Delete removes an activity by ID.
	// Returns domain.ErrNotFound if no activity with that ID exists.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgActivityRepo is the Postgres implementation of ActivityRepo.
type pgActivityRepo struct {
	db db
}

// NewActivityRepo constructs an ActivityRepo backed by the provided db connection.
func NewActivityRepo(db db) ActivityRepo {
	return &pgActivityRepo{db: db}
}

const activityColumns = `id, city_id, name, type, color, start_time, end_time, notes, date, created_at, updated_at`

func (r *pgActivityRepo) Create(ctx context.Context, a domain.NewActivity) (domain.Activity, error) {
	const q = `
		INSERT INTO activities (city_id, name, type, color, start_time, end_time, notes, date)
		VALUES (@city_id, @name, @type, @color, @start_time, @end_time, @notes, @date)
		RETURNING ` + activityColumns

	args := pgx.NamedArgs{
		"city_id":    a.CityID,
		"name":       a.Name,
		"type":       a.Type,
		"color":      a.Color,
		"start_time": a.StartTime,
		"end_time":   a.EndTime,
		"notes":      a.Notes,
		"date":       a.Date,
	}

	result, err := scanActivity(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) Update(ctx context.Context, p domain.ActivityPatch) (domain.Activity, error) {
	const q = `
		UPDATE activities
		SET name       = COALESCE(@name, name),
		    type       = COALESCE(@type, type),
		    color      = COALESCE(@color, color),
		    start_time = COALESCE(@start_time, start_time),
		    end_time   = COALESCE(@end_time, end_time),
		    notes      = COALESCE(@notes, notes),
		    updated_at = now()
		WHERE id = @id
		RETURNING ` + activityColumns

	args := pgx.NamedArgs{
		"id":         p.ID,
		"name":       p.Name,
		"type":       p.Type,
		"color":      p.Color,
		"start_time": p.StartTime,
		"end_time":   p.EndTime,
		"notes":      p.Notes,
	}

	result, err := scanActivity(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM activities WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", classify(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func listActivitiesByCity(ctx context.Context, q db, cityID uuid.UUID) ([]domain.Activity, error) {
	const stmt = `
		SELECT ` + activityColumns + `
		FROM activities
		WHERE city_id = @city_id
		ORDER BY created_at, id`

	return queryActivities(ctx, q, stmt, pgx.NamedArgs{"city_id": cityID})
}

func listAllActivities(ctx context.Context, q db) ([]domain.Activity, error) {
	const stmt = `
		SELECT ` + activityColumns + `
		FROM activities
		ORDER BY created_at, id`

	return queryActivities(ctx, q, stmt)
}

// queryActivities runs stmt and scans every row. It never returns a nil slice
// on success.
func queryActivities(ctx context.Context, q db, stmt string, args ...any) ([]domain.Activity, error) {
	rows, err := q.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("activities: %w", classify(err))
	}
	defer rows.Close()

	activities := []domain.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("activities: scan: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("activities: rows: %w", err)
	}
	return activities, nil
}

// scanActivity maps a single row into a domain.Activity.
func scanActivity(s scanner) (domain.Activity, error) {
	var a domain.Activity
	err := s.Scan(&a.ID, &a.CityID, &a.Name, &a.Type, &a.Color, &a.StartTime, &a.EndTime,
		&a.Notes, &a.Date, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return domain.Activity{}, classify(err)
	}
	return a, nil
}
