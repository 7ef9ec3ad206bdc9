package domain

import (
	"time"

	"github.com/google/uuid"
)

// Default canvas coordinates for a city created without a usable position.
const (
	DefaultPosX = 100.0
	DefaultPosY = 300.0
)

// City is a stop within a trip. PosX/PosY are canvas coordinates used by the
// client-side map; the API stores them verbatim.
type City struct {
	ID         uuid.UUID  `json:"id"`
	TripID     uuid.UUID  `json:"tripId"`
	Name       string     `json:"name"`
	Transport  string     `json:"transport"`
	StartDate  *time.Time `json:"startDate"`
	EndDate    *time.Time `json:"endDate"`
	PosX       float64    `json:"posX"`
	PosY       float64    `json:"posY"`
	Activities []Activity `json:"activities"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// Position is the optional {x, y} object clients send for a city.
// Either coordinate may be absent.
type Position struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

// NewCity is the input for creating a city. TripID is ignored when the city
// is created inline as part of a trip. A nil Name is passed to the store as
// NULL and rejected there.
type NewCity struct {
	TripID    uuid.UUID
	Name      *string
	Transport string
	StartDate *time.Time
	EndDate   *time.Time
	Position  *Position
}

// CityPositionPatch carries a partial position update. A nil field leaves the
// stored coordinate unchanged.
type CityPositionPatch struct {
	ID   uuid.UUID
	PosX *float64
	PosY *float64
}

// WithDefaults returns a copy of c whose Position has both coordinates set,
// following ResolvePosition.
func (c NewCity) WithDefaults() NewCity {
	x, y := ResolvePosition(c.Position)
	c.Position = &Position{X: &x, Y: &y}
	return c
}

// ResolvePosition applies the create-time defaults to p.
// An absent position, an absent coordinate, and an explicit zero all resolve
// to the default for that axis.
func ResolvePosition(p *Position) (x, y float64) {
	x, y = DefaultPosX, DefaultPosY
	if p == nil {
		return x, y
	}
	if p.X != nil && *p.X != 0 {
		x = *p.X
	}
	if p.Y != nil && *p.Y != 0 {
		y = *p.Y
	}
	return x, y
}
