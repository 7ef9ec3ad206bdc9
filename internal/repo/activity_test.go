package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alefloresc/p2-systems-haniya-gloria/internal/domain"
	"github.com/alefloresc/p2-systems-haniya-gloria/internal/repo"
)

// seedCity creates a trip with one city and returns the city's ID.
func seedCity(t *testing.T, tx pgx.Tx) uuid.UUID {
	t.Helper()
	trip, err := repo.NewTripRepo(tx).Create(context.Background(), domain.NewTrip{
		Name:   ptr("Seed"),
		Cities: []domain.NewCity{domain.NewCity{Name: ptr("Granada")}.WithDefaults()},
	})
	require.NoError(t, err)
	return trip.Cities[0].ID
}

func TestActivityRepo_Create(t *testing.T) {
	tx := newTestTx(t)
	cityID := seedCity(t, tx)
	r := repo.NewActivityRepo(tx)
	date := time.Date(2025, 5, 4, 0, 0, 0, 0, time.UTC)

	got, err := r.Create(context.Background(), domain.NewActivity{
		CityID:    cityID,
		Name:      ptr("Alhambra"),
		Type:      "sight",
		Color:     "#3498DB",
		StartTime: ptr("09:00"),
		EndTime:   ptr("12:30"),
		Date:      &date,
	})

	require.NoError(t, err)
	assert.Equal(t, cityID, got.CityID)
	assert.Equal(t, "Alhambra", got.Name)
	require.NotNil(t, got.StartTime)
	assert.Equal(t, "09:00", *got.StartTime)
	require.NotNil(t, got.Date)
	assert.True(t, got.Date.Equal(date))
	assert.Equal(t, "", got.Notes)
}

func TestActivityRepo_Create_UnknownCity(t *testing.T) {
	r := repo.NewActivityRepo(newTestTx(t))

	_, err := r.Create(context.Background(), domain.NewActivity{
		CityID: uuid.New(), Name: ptr("Ghost"), Type: "other", Color: "#F4D03F",
	})

	assert.ErrorIs(t, err, domain.ErrConstraint)
}

func TestActivityRepo_Update_Partial(t *testing.T) {
	tx := newTestTx(t)
	cityID := seedCity(t, tx)
	r := repo.NewActivityRepo(tx)
	ctx := context.Background()

	created, err := r.Create(ctx, domain.NewActivity{
		CityID: cityID, Name: ptr("Tapas"), Type: "food", Color: "#E67E22", Notes: "bring cash",
	})
	require.NoError(t, err)

	got, err := r.Update(ctx, domain.ActivityPatch{ID: created.ID, Name: ptr("Late tapas")})

	require.NoError(t, err)
	assert.Equal(t, "Late tapas", got.Name)
	assert.Equal(t, "food", got.Type)
	assert.Equal(t, "#E67E22", got.Color)
	assert.Equal(t, "bring cash", got.Notes)
}

func TestActivityRepo_Update_NotFound(t *testing.T) {
	r := repo.NewActivityRepo(newTestTx(t))

	_, err := r.Update(context.Background(), domain.ActivityPatch{ID: uuid.New(), Name: ptr("x")})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActivityRepo_Delete(t *testing.T) {
	tx := newTestTx(t)
	cityID := seedCity(t, tx)
	r := repo.NewActivityRepo(tx)
	ctx := context.Background()

	created, err := r.Create(ctx, domain.NewActivity{CityID: cityID, Name: ptr("Flamenco"), Type: "show", Color: "#000"})
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, created.ID))
	assert.ErrorIs(t, r.Delete(ctx, created.ID), domain.ErrNotFound)
}
