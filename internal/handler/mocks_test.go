package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/alefloresc/p2-systems-haniya-gloria/internal/domain"
	"github.com/alefloresc/p2-systems-haniya-gloria/internal/handler"
)

// mockTripServicer is a test double for handler.TripServicer.
// Set only the method fields your test needs; calling an unset one panics,
// which the router turns into a 500 the test will notice.
type mockTripServicer struct {
	create func(ctx context.Context, trip domain.NewTrip) (domain.Trip, error)
	list   func(ctx context.Context) ([]domain.Trip, error)
	delete func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripServicer) Create(ctx context.Context, t domain.NewTrip) (domain.Trip, error) {
	return m.create(ctx, t)
}
func (m *mockTripServicer) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// mockCityServicer is a test double for handler.CityServicer.
type mockCityServicer struct {
	create         func(ctx context.Context, city domain.NewCity) (domain.City, error)
	updatePosition func(ctx context.Context, patch domain.CityPositionPatch) (domain.City, error)
	delete         func(ctx context.Context, id uuid.UUID) error
}

func (m *mockCityServicer) Create(ctx context.Context, c domain.NewCity) (domain.City, error) {
	return m.create(ctx, c)
}
func (m *mockCityServicer) UpdatePosition(ctx context.Context, p domain.CityPositionPatch) (domain.City, error) {
	return m.updatePosition(ctx, p)
}
func (m *mockCityServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// mockActivityServicer is a test double for handler.ActivityServicer.
type mockActivityServicer struct {
	create func(ctx context.Context, a domain.NewActivity) (domain.Activity, error)
	update func(ctx context.Context, p domain.ActivityPatch) (domain.Activity, error)
	delete func(ctx context.Context, id uuid.UUID) error
}

func (m *mockActivityServicer) Create(ctx context.Context, a domain.NewActivity) (domain.Activity, error) {
	return m.create(ctx, a)
}
func (m *mockActivityServicer) Update(ctx context.Context, p domain.ActivityPatch) (domain.Activity, error) {
	return m.update(ctx, p)
}
func (m *mockActivityServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// compile-time checks: mocks must satisfy the handler interfaces.
var (
	_ handler.TripServicer     = (*mockTripServicer)(nil)
	_ handler.CityServicer     = (*mockCityServicer)(nil)
	_ handler.ActivityServicer = (*mockActivityServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

// services bundles the three servicers; nil fields get empty mocks.
type services struct {
	trips      handler.TripServicer
	cities     handler.CityServicer
	activities handler.ActivityServicer
}

// newHTTPHandler wires a Server the same way internal/app does in production,
// with logs discarded.
func newHTTPHandler(svc services, opts handler.Options) http.Handler {
	if svc.trips == nil {
		svc.trips = &mockTripServicer{}
	}
	if svc.cities == nil {
		svc.cities = &mockCityServicer{}
	}
	if svc.activities == nil {
		svc.activities = &mockActivityServicer{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return handler.NewServer(svc.trips, svc.cities, svc.activities, opts).Handler()
}

// do sends one request through h and returns the recorder.
func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// decodeMap decodes a JSON object response.
func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&m))
	return m
}

func ptr[T any](v T) *T { return &v }
