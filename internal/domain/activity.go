package domain

import (
	"time"

	"github.com/google/uuid"
)

// Defaults applied to an activity created without these fields.
const (
	DefaultActivityType  = "other"
	DefaultActivityColor = "#F4D03F"
)

// Activity is a scheduled event within a city.
// StartTime and EndTime are clock strings such as "09:30"; Date is the day.
type Activity struct {
	ID        uuid.UUID  `json:"id"`
	CityID    uuid.UUID  `json:"cityId"`
	Name      string     `json:"name"`
	Type      string     `json:"type"`
	Color     string     `json:"color"`
	StartTime *string    `json:"startTime"`
	EndTime   *string    `json:"endTime"`
	Notes     string     `json:"notes"`
	Date      *time.Time `json:"date"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// NewActivity is the input for creating an activity. A nil Name is passed to
// the store as NULL and rejected there.
type NewActivity struct {
	CityID    uuid.UUID
	Name      *string
	Type      string
	Color     string
	StartTime *string
	EndTime   *string
	Notes     string
	Date      *time.Time
}

// WithDefaults returns a copy of a with empty Type and Color replaced by their
// defaults. Notes is already "" when absent.
func (a NewActivity) WithDefaults() NewActivity {
	if a.Type == "" {
		a.Type = DefaultActivityType
	}
	if a.Color == "" {
		a.Color = DefaultActivityColor
	}
	return a
}

// ActivityPatch carries a partial activity update. Nil fields are left
// unchanged in the store.
type ActivityPatch struct {
	ID        uuid.UUID
	Name      *string
	Type      *string
	Color     *string
	StartTime *string
	EndTime   *string
	Notes     *string
}
