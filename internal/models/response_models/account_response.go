package response_models

import "github.com/google/uuid"

type ProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	IsHost    bool      `json:"is_host"`
	CreatedAt int64     `json:"created_at"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
