package response_models

import (
	"github.com/google/uuid"
	"tripbuddy/internal/planner"
)

// GenerateItineraryResponse: TripID and Saved are only set when the caller was
// authenticated and asked for the itinerary to be persisted. A generation that
// succeeded but failed to save still carries the full itinerary.
type GenerateItineraryResponse struct {
	TripID    *uuid.UUID        `json:"trip_id,omitempty"`
	Itinerary []planner.DayPlan `json:"itinerary"`
	Saved     bool              `json:"saved"`
}
