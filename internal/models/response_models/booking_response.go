package response_models

import (
	"encoding/json"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID               uuid.UUID       `json:"id"`
	TripID           uuid.UUID       `json:"trip_id"`
	Type             string          `json:"type"`
	Details          json.RawMessage `json:"details,omitempty"`
	ConfirmationCode string          `json:"confirmation_code"`
	Status           string          `json:"status"`
	CreatedAt        int64           `json:"created_at"`
}
