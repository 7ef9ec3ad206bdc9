package handler

import (
	"net/http"
	"time"

	"github.com/alefloresc/p2-systems-haniya-gloria/internal/domain"
)

// cityFields are the city attributes accepted both inline in a trip and on
// POST /api/cities.
type cityFields struct {
	Name      *string          `json:"name"`
	Transport string           `json:"transport"`
	StartDate *time.Time       `json:"startDate"`
	EndDate   *time.Time       `json:"endDate"`
	Position  *domain.Position `json:"position"`
}

func (c cityFields) toDomain() domain.NewCity {
	return domain.NewCity{
		Name:      c.Name,
		Transport: c.Transport,
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
		Position:  c.Position,
	}
}

type createTripRequest struct {
	Name   *string      `json:"name"`
	Cities []cityFields `json:"cities"`
}

// listTrips handles GET /api/trips.
func (s *Server) listTrips(w http.ResponseWriter, r *http.Request) error {
	s.log.InfoContext(r.Context(), "getting all trips")
	trips, err := s.trips.List(r.Context())
	if err != nil {
		return s.escalate(w, r, "Failed to get trips", err)
	}
	s.log.InfoContext(r.Context(), "found trips", "count", len(trips))
	writeJSON(w, http.StatusOK, trips)
	return nil
}

// createTrip handles POST /api/trips. Cities in the body are created with
// the trip in one step.
func (s *Server) createTrip(w http.ResponseWriter, r *http.Request) error {
	s.log.InfoContext(r.Context(), "creating trip")
	var body createTripRequest
	if err := decode(r, &body); err != nil {
		return s.fail(err)
	}

	in := domain.NewTrip{Name: body.Name}
	if body.Cities != nil {
		in.Cities = make([]domain.NewCity, len(body.Cities))
		for i, c := range body.Cities {
			in.Cities[i] = c.toDomain()
		}
	}

	trip, err := s.trips.Create(r.Context(), in)
	if err != nil {
		return s.escalate(w, r, "Failed to create trip", err)
	}
	s.log.InfoContext(r.Context(), "created trip", "id", trip.ID)
	writeJSON(w, http.StatusCreated, trip)
	return nil
}

// deleteTrip handles DELETE /api/trips/{id}.
func (s *Server) deleteTrip(w http.ResponseWriter, r *http.Request) error {
	seg := pathID(r)
	s.log.InfoContext(r.Context(), "deleting trip", "id", seg)

	if !validPathID(seg, "trips") {
		s.log.WarnContext(r.Context(), "invalid trip id", "id", seg)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid trip ID"})
		return nil
	}

	id, err := parseID(seg)
	if err == nil {
		err = s.trips.Delete(r.Context(), id)
	}
	if err != nil {
		s.storeFailure(w, r, "Failed to delete trip", err)
		return nil
	}

	s.log.InfoContext(r.Context(), "trip deleted", "id", id)
	writeJSON(w, http.StatusOK, deletedResponse{Success: true, Message: "Trip deleted"})
	return nil
}
