package request_models

type AddWishDestinationRequest struct {
	Destination string   `json:"destination" binding:"required"`
	Notes       string   `json:"notes"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}
