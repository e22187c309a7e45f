package request_models

import "encoding/json"

type CreateBookingRequest struct {
	TripID string `json:"trip_id" binding:"required,uuid4"`
	Type   string `json:"type" binding:"required,oneof=flight hotel train"`
	// Details carries the raw form payload (dates, passengers, room type...)
	// untouched; bookings are mock so the server never interprets it.
	Details json.RawMessage `json:"details"`
}
