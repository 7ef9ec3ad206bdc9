package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alefloresc/p2-systems-haniya-gloria/internal/domain"
	"github.com/alefloresc/p2-systems-haniya-gloria/internal/repo"
)

func tripFixture() domain.NewTrip {
	return domain.NewTrip{
		Name: ptr("Iberia"),
		Cities: []domain.NewCity{
			{Name: ptr("Lisbon"), Transport: "plane", Position: &domain.Position{X: ptr(120.0), Y: ptr(310.0)}},
			domain.NewCity{Name: ptr("Porto"), Transport: "train"}.WithDefaults(),
		},
	}
}

func TestTripRepo_Create_WithCities(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))

	got, err := r.Create(context.Background(), tripFixture())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, "Iberia", got.Name)
	require.Len(t, got.Cities, 2)
	assert.Equal(t, got.ID, got.Cities[0].TripID)
	assert.Equal(t, 120.0, got.Cities[0].PosX)
	assert.Equal(t, 100.0, got.Cities[1].PosX, "resolved default is stored")
	assert.Equal(t, 300.0, got.Cities[1].PosY)
	assert.NotNil(t, got.Cities[1].Activities)
}

func TestTripRepo_Create_NilNameIsConstraint(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))

	_, err := r.Create(context.Background(), domain.NewTrip{Cities: []domain.NewCity{}})

	assert.ErrorIs(t, err, domain.ErrConstraint)
}

func TestTripRepo_Create_BadCityRollsBackTrip(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewTripRepo(tx)
	ctx := context.Background()

	in := tripFixture()
	in.Name = ptr("rollback-" + uuid.NewString())
	in.Cities[1].Name = nil

	_, err := r.Create(ctx, in)
	require.ErrorIs(t, err, domain.ErrConstraint)

	trips, err := r.ListWithChildren(ctx)
	require.NoError(t, err)
	for _, tr := range trips {
		assert.NotEqual(t, *in.Name, tr.Name, "trip insert must be rolled back with the failed city")
	}
}

func TestTripRepo_ListWithChildren(t *testing.T) {
	tx := newTestTx(t)
	trips := repo.NewTripRepo(tx)
	activities := repo.NewActivityRepo(tx)
	ctx := context.Background()

	created, err := trips.Create(ctx, tripFixture())
	require.NoError(t, err)
	_, err = activities.Create(ctx, domain.NewActivity{
		CityID: created.Cities[0].ID,
		Name:   ptr("Tram 28"),
		Type:   "sight",
		Color:  "#FF0000",
	})
	require.NoError(t, err)

	all, err := trips.ListWithChildren(ctx)
	require.NoError(t, err)

	var got *domain.Trip
	for i := range all {
		if all[i].ID == created.ID {
			got = &all[i]
		}
	}
	require.NotNil(t, got, "created trip must be listed")
	require.Len(t, got.Cities, 2)
	require.Len(t, got.Cities[0].Activities, 1)
	assert.Equal(t, "Tram 28", got.Cities[0].Activities[0].Name)
	assert.Empty(t, got.Cities[1].Activities)
}

func TestTripRepo_ListWithChildren_NeverNil(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))

	got, err := r.ListWithChildren(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestTripRepo_Delete_CascadesToChildren(t *testing.T) {
	tx := newTestTx(t)
	trips := repo.NewTripRepo(tx)
	cities := repo.NewCityRepo(tx)
	ctx := context.Background()

	created, err := trips.Create(ctx, tripFixture())
	require.NoError(t, err)

	require.NoError(t, trips.Delete(ctx, created.ID))

	err = cities.Delete(ctx, created.Cities[0].ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "city must be gone with its trip")
}

func TestTripRepo_Delete_NotFound(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))

	err := r.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
