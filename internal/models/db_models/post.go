package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Post struct {
	BaseModel
	UserID     uuid.UUID `gorm:"index"`
	TripID     uuid.UUID `gorm:"index"`
	Content    string
	ImageURLs  pq.StringArray `gorm:"type:text[]"`
	LikesCount int

	User *Account `gorm:"foreignKey:UserID"`
	Trip *Trip    `gorm:"foreignKey:TripID"`
}

type PostLike struct {
	BaseModel
	PostID uuid.UUID `gorm:"index:idx_post_likes_post_user,unique"`
	UserID uuid.UUID `gorm:"index:idx_post_likes_post_user,unique"`
}

type UserFollow struct {
	BaseModel
	FollowerID  uuid.UUID `gorm:"index:idx_user_follows_pair,unique"`
	FollowingID uuid.UUID `gorm:"index:idx_user_follows_pair,unique"`
}
