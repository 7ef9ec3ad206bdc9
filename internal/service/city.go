package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/alefloresc/p2-systems-haniya-gloria/internal/domain"
	"github.com/alefloresc/p2-systems-haniya-gloria/internal/repo"
)

// CityService implements business logic for City operations.
type CityService struct {
	repo repo.CityRepo
}

// NewCityService constructs a CityService backed by the provided CityRepo.
func NewCityService(r repo.CityRepo) *CityService {
	return &CityService{repo: r}
}

// Create persists a city under city.TripID with its default position filled.
func (s *CityService) Create(ctx context.Context, city domain.NewCity) (domain.City, error) {
	result, err := s.repo.Create(ctx, city.WithDefaults())
	if err != nil {
		return domain.City{}, fmt.Errorf("service.CityService.Create: %w", err)
	}
	return result, nil
}

// UpdatePosition changes the coordinates present in patch. No defaults apply
// here: an explicit zero is stored as zero.
func (s *CityService) UpdatePosition(ctx context.Context, patch domain.CityPositionPatch) (domain.City, error) {
	result, err := s.repo.UpdatePosition(ctx, patch)
	if err != nil {
		return domain.City{}, fmt.Errorf("service.CityService.UpdatePosition: %w", err)
	}
	return result, nil
}

// Delete removes a city by ID.
func (s *CityService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.CityService.Delete: %w", err)
	}
	return nil
}
