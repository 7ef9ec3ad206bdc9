// Package service contains the business logic for the trip planner API.
// Services fill defaults and orchestrate repo calls. No SQL lives here;
// services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/alefloresc/p2-systems-haniya-gloria/internal/domain"
	"github.com/alefloresc/p2-systems-haniya-gloria/internal/repo"
)

// ErrCitiesRequired is returned by TripService.Create when the request carried
// no cities array. It is deliberately not a domain sentinel: callers treat it
// as an unexpected failure, not a client error.
var ErrCitiesRequired = errors.New("cities must be an array")

// TripService implements business logic for Trip operations.
type TripService struct {
	repo repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{repo: r}
}

// Create persists a trip and its cities, filling each city's default position.
func (s *TripService) Create(ctx context.Context, trip domain.NewTrip) (domain.Trip, error) {
	if trip.Cities == nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", ErrCitiesRequired)
	}
	cities := make([]domain.NewCity, len(trip.Cities))
	for i, c := range trip.Cities {
		cities[i] = c.WithDefaults()
	}
	trip.Cities = cities

	result, err := s.repo.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// List returns every trip with nested cities and activities.
// Always returns a non-nil slice so the response encodes as [] rather than null.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.repo.ListWithChildren(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// Delete removes a trip by ID.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}
