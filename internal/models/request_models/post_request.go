package request_models

type CreatePostRequest struct {
	TripID    string   `json:"trip_id" binding:"required,uuid4"`
	Content   string   `json:"content"`
	ImageURLs []string `json:"image_urls"`
}
