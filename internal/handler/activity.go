package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/alefloresc/p2-systems-haniya-gloria/internal/domain"
)

type createActivityRequest struct {
	CityID    uuid.UUID  `json:"cityId"`
	Name      *string    `json:"name"`
	Type      string     `json:"type"`
	Color     string     `json:"color"`
	StartTime *string    `json:"startTime"`
	EndTime   *string    `json:"endTime"`
	Notes     string     `json:"notes"`
	Date      *time.Time `json:"date"`
}

type updateActivityRequest struct {
	Name      *string `json:"name"`
	Type      *string `json:"type"`
	Color     *string `json:"color"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	Notes     *string `json:"notes"`
}

// createActivity handles POST /api/activities.
func (s *Server) createActivity(w http.ResponseWriter, r *http.Request) error {
	s.log.InfoContext(r.Context(), "creating activity")
	var body createActivityRequest
	if err := decode(r, &body); err != nil {
		return s.fail(err)
	}

	activity, err := s.activities.Create(r.Context(), domain.NewActivity{
		CityID:    body.CityID,
		Name:      body.Name,
		Type:      body.Type,
		Color:     body.Color,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		Notes:     body.Notes,
		Date:      body.Date,
	})
	if err != nil {
		return s.escalate(w, r, "Failed to create activity", err)
	}
	s.log.InfoContext(r.Context(), "created activity", "id", activity.ID)
	writeJSON(w, http.StatusCreated, activity)
	return nil
}

// updateActivity handles PATCH /api/activities/{id}.
func (s *Server) updateActivity(w http.ResponseWriter, r *http.Request) error {
	seg := pathID(r)
	s.log.InfoContext(r.Context(), "updating activity", "id", seg)

	var body updateActivityRequest
	if err := decode(r, &body); err != nil {
		return s.fail(err)
	}

	id, err := parseID(seg)
	var activity domain.Activity
	if err == nil {
		activity, err = s.activities.Update(r.Context(), domain.ActivityPatch{
			ID:        id,
			Name:      body.Name,
			Type:      body.Type,
			Color:     body.Color,
			StartTime: body.StartTime,
			EndTime:   body.EndTime,
			Notes:     body.Notes,
		})
	}
	if err != nil {
		s.storeFailure(w, r, "Failed to update activity", err)
		return nil
	}

	s.log.InfoContext(r.Context(), "activity updated", "id", activity.ID)
	writeJSON(w, http.StatusOK, activity)
	return nil
}

// deleteActivity handles DELETE /api/activities/{id}.
func (s *Server) deleteActivity(w http.ResponseWriter, r *http.Request) error {
	seg := pathID(r)
	s.log.InfoContext(r.Context(), "deleting activity", "id", seg)

	if !validPathID(seg, "activities") {
		s.log.WarnContext(r.Context(), "invalid activity id", "id", seg)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid activity ID"})
		return nil
	}

	id, err := parseID(seg)
	if err == nil {
		err = s.activities.Delete(r.Context(), id)
	}
	if err != nil {
		s.storeFailure(w, r, "Failed to delete activity", err)
		return nil
	}

	s.log.InfoContext(r.Context(), "activity deleted", "id", id)
	writeJSON(w, http.StatusOK, deletedResponse{Success: true, Message: "Activity deleted"})
	return nil
}
