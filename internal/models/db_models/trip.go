package db_models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type TripStatus string

const (
	TripStatusUpcoming  TripStatus = "upcoming"
	TripStatusOngoing   TripStatus = "ongoing"
	TripStatusCompleted TripStatus = "completed"
	TripStatusCancelled TripStatus = "cancelled"
)

type Trip struct {
	BaseModel
	UserID      uuid.UUID `gorm:"index"`
	Title       string
	Source      string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Budget      float64
	IsPublic    bool
	Status      TripStatus     `gorm:"default:upcoming"`
	ClonedFrom  *uuid.UUID     `gorm:"type:uuid"`
	Tags        pq.StringArray `gorm:"type:text[]"`

	Days []ItineraryDay `gorm:"foreignKey:TripID"`
}

// ItineraryDay rows are fully replaced whenever an itinerary is regenerated;
// Activities is an opaque JSON blob the planner produced, never patched
// in place.
type ItineraryDay struct {
	BaseModel
	TripID     uuid.UUID `gorm:"index"`
	DayNumber  int
	Date       time.Time
	Activities json.RawMessage `gorm:"type:jsonb"`
}
