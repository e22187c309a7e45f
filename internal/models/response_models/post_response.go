package response_models

import "github.com/google/uuid"

type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatar_url,omitempty"`
}

type TripSummary struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	IsPublic    bool      `json:"is_public"`
}

type PostResponse struct {
	ID         uuid.UUID    `json:"id"`
	Content    string       `json:"content,omitempty"`
	ImageURLs  []string     `json:"image_urls,omitempty"`
	LikesCount int          `json:"likes_count"`
	CreatedAt  int64        `json:"created_at"`
	User       UserSummary  `json:"user"`
	Trip       *TripSummary `json:"trip,omitempty"`
}
