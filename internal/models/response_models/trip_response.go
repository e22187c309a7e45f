package response_models

import (
	"github.com/google/uuid"
	"tripbuddy/internal/planner"
)

type TripResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Source      string     `json:"source,omitempty"`
	Destination string     `json:"destination"`
	StartDate   string     `json:"start_date"` // "2006-01-02"
	EndDate     string     `json:"end_date"`
	Budget      float64    `json:"budget"`
	IsPublic    bool       `json:"is_public"`
	Status      string     `json:"status"`
	ClonedFrom  *uuid.UUID `json:"cloned_from,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
}

type TripDetailResponse struct {
	TripResponse
	TotalDays int                    `json:"total_days"`
	Days      []ItineraryDayResponse `json:"days"`
}

type ItineraryDayResponse struct {
	ID         uuid.UUID          `json:"id"`
	DayNumber  int                `json:"day_number"`
	Date       string             `json:"date"`
	Activities []planner.Activity `json:"activities"`
}
