// Package domain contains the core data types for the trip planner API.
// It depends only on uuid and is imported by every other internal package
// (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is the top-level itinerary. Cities belong to a trip and are deleted
// with it.
type Trip struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Cities    []City    `json:"cities"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewTrip is the input for creating a trip together with its cities.
// A nil Name is passed to the store as NULL. A nil Cities slice means the
// caller sent no cities array at all.
type NewTrip struct {
	Name   *string
	Cities []NewCity
}
