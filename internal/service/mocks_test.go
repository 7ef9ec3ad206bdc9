package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/alefloresc/p2-systems-haniya-gloria/internal/domain"
	"github.com/alefloresc/p2-systems-haniya-gloria/internal/repo"
)

// ---- mock repos ------------------------------------------------------------

// mockTripRepo is a hand-written test double for repo.TripRepo.
type mockTripRepo struct {
	create           func(ctx context.Context, trip domain.NewTrip) (domain.Trip, error)
	listWithChildren func(ctx context.Context) ([]domain.Trip, error)
	delete           func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.NewTrip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) ListWithChildren(ctx context.Context) ([]domain.Trip, error) {
	return m.listWithChildren(ctx)
}
func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// mockCityRepo is a hand-written test double for repo.CityRepo.
type mockCityRepo struct {
	create         func(ctx context.Context, city domain.NewCity) (domain.City, error)
	updatePosition func(ctx context.Context, patch domain.CityPositionPatch) (domain.City, error)
	delete         func(ctx context.Context, id uuid.UUID) error
}

func (m *mockCityRepo) Create(ctx context.Context, city domain.NewCity) (domain.City, error) {
	return m.create(ctx, city)
}
func (m *mockCityRepo) UpdatePosition(ctx context.Context, patch domain.CityPositionPatch) (domain.City, error) {
	return m.updatePosition(ctx, patch)
}
func (m *mockCityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// mockActivityRepo is a hand-written test double for repo.ActivityRepo.
type mockActivityRepo struct {
	create func(ctx context.Context, a domain.NewActivity) (domain.Activity, error)
	update func(ctx context.Context, patch domain.ActivityPatch) (domain.Activity, error)
	delete func(ctx context.Context, id uuid.UUID) error
}

func (m *mockActivityRepo) Create(ctx context.Context, a domain.NewActivity) (domain.Activity, error) {
	return m.create(ctx, a)
}
func (m *mockActivityRepo) Update(ctx context.Context, patch domain.ActivityPatch) (domain.Activity, error) {
	return m.update(ctx, patch)
}
func (m *mockActivityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// compile-time checks: mocks must satisfy the repo interfaces.
var (
	_ repo.TripRepo     = (*mockTripRepo)(nil)
	_ repo.CityRepo     = (*mockCityRepo)(nil)
	_ repo.ActivityRepo = (*mockActivityRepo)(nil)
)

func ptr[T any](v T) *T { return &v }
