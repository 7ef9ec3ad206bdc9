package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/alefloresc/p2-systems-haniya-gloria/internal/domain"
)

type createCityRequest struct {
	TripID uuid.UUID `json:"tripId"`
	cityFields
}

type updateCityRequest struct {
	Position *domain.Position `json:"position"`
}

// createCity handles POST /api/cities.
func (s *Server) createCity(w http.ResponseWriter, r *http.Request) error {
	s.log.InfoContext(r.Context(), "creating city")
	var body createCityRequest
	if err := decode(r, &body); err != nil {
		return s.fail(err)
	}

	in := body.toDomain()
	in.TripID = body.TripID

	city, err := s.cities.Create(r.Context(), in)
	if err != nil {
		return s.escalate(w, r, "Failed to create city", err)
	}
	s.log.InfoContext(r.Context(), "created city", "id", city.ID)
	writeJSON(w, http.StatusCreated, city)
	return nil
}

// updateCity handles PATCH /api/cities/{id}. Only the coordinates present in
// body.position change.
func (s *Server) updateCity(w http.ResponseWriter, r *http.Request) error {
	seg := pathID(r)
	s.log.InfoContext(r.Context(), "updating city", "id", seg)

	var body updateCityRequest
	if err := decode(r, &body); err != nil {
		return s.fail(err)
	}

	var patch domain.CityPositionPatch
	if body.Position != nil {
		patch.PosX, patch.PosY = body.Position.X, body.Position.Y
	}

	id, err := parseID(seg)
	var city domain.City
	if err == nil {
		patch.ID = id
		city, err = s.cities.UpdatePosition(r.Context(), patch)
	}
	if err != nil {
		s.storeFailure(w, r, "Failed to update city", err)
		return nil
	}

	s.log.InfoContext(r.Context(), "city updated", "id", city.ID)
	writeJSON(w, http.StatusOK, city)
	return nil
}

// deleteCity handles DELETE /api/cities/{id}.
func (s *Server) deleteCity(w http.ResponseWriter, r *http.Request) error {
	seg := pathID(r)
	s.log.InfoContext(r.Context(), "deleting city", "id", seg)

	if !validPathID(seg, "cities") {
		s.log.WarnContext(r.Context(), "invalid city id", "id", seg)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid city ID"})
		return nil
	}

	id, err := parseID(seg)
	if err == nil {
		err = s.cities.Delete(r.Context(), id)
	}
	if err != nil {
		s.storeFailure(w, r, "Failed to delete city", err)
		return nil
	}

	s.log.InfoContext(r.Context(), "city deleted", "id", id)
	writeJSON(w, http.StatusOK, deletedResponse{Success: true, Message: "City deleted"})
	return nil
}
