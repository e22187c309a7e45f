package response_models

import "github.com/google/uuid"

type WishDestinationResponse struct {
	ID          uuid.UUID `json:"id"`
	Destination string    `json:"destination"`
	Notes       string    `json:"notes,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	CreatedAt   int64     `json:"created_at"`
}

type TravelBadgeResponse struct {
	ID               uuid.UUID `json:"id"`
	BadgeName        string    `json:"badge_name"`
	BadgeDescription string    `json:"badge_description,omitempty"`
	BadgeImageURL    string    `json:"badge_image_url,omitempty"`
	EarnedAt         int64     `json:"earned_at"`
}
