package db_models

import "github.com/google/uuid"

type WishDestination struct {
	BaseModel
	UserID      uuid.UUID `gorm:"index"`
	Destination string
	Notes       string
	Latitude    *float64
	Longitude   *float64
}

// TravelBadge is one stamp in a user's travel passport. A user holds each
// badge name at most once; AwardOnce in the repository enforces that.
type TravelBadge struct {
	BaseModel
	UserID           uuid.UUID `gorm:"index"`
	BadgeName        string
	BadgeDescription string
	BadgeImageURL    string
	EarnedAt         int64 `gorm:"autoCreateTime"`
}
