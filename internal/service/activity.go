package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/alefloresc/p2-systems-haniya-gloria/internal/domain"
	"github.com/alefloresc/p2-systems-haniya-gloria/internal/repo"
)

// ActivityService implements business logic for Activity operations.
type ActivityService struct {
	repo repo.ActivityRepo
}

// NewActivityService constructs an ActivityService backed by the provided ActivityRepo.
func NewActivityService(r repo.ActivityRepo) *ActivityService {
	return &ActivityService{repo: r}
}

// Create persists an activity, defaulting type, color, and notes.
func (s *ActivityService) Create(ctx context.Context, activity domain.NewActivity) (domain.Activity, error) {
	result, err := s.repo.Create(ctx, activity.WithDefaults())
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return result, nil
}

// Update applies a partial update.
func (s *ActivityService) Update(ctx context.Context, patch domain.ActivityPatch) (domain.Activity, error) {
	result, err := s.repo.Update(ctx, patch)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	return result, nil
}

// Delete removes an activity by ID.
func (s *ActivityService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	return nil
}
