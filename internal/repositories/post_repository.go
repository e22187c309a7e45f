package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "tripbuddy/internal/models/db_models"
	"tripbuddy/pkg/utils"
)

type PostRepository interface {
	CreatePost(ctx context.Context, post *dbm.Post) error
	GetPostByID(ctx context.Context, postID uuid.UUID) (*dbm.Post, error)
	ListFeed(ctx context.Context, page, pageSize int) ([]dbm.Post, error)
	LikePost(ctx context.Context, postID, userID uuid.UUID) error
	UnlikePost(ctx context.Context, postID, userID uuid.UUID) error
	HasLiked(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	Follow(ctx context.Context, followerID, followingID uuid.UUID) error
	Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error
	IsFollowing(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) CreatePost(ctx context.Context, post *dbm.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetPostByID(ctx context.Context, postID uuid.UUID) (*dbm.Post, error) {
	var post dbm.Post
	err := r.db.WithContext(ctx).
		Where("id = ?", postID).
		Preload("User").
		Preload("Trip").
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// ListFeed returns posts about public trips, newest first, with author and
// trip preloaded for the feed cards.
func (r *postRepository) ListFeed(ctx context.Context, page, pageSize int) ([]dbm.Post, error) {
	var posts []dbm.Post
	err := r.db.WithContext(ctx).
		Joins("JOIN trips ON trips.id = posts.trip_id").
		Where("trips.is_public = ?", true).
		Preload("User").
		Preload("Trip").
		Order("posts.created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// LikePost inserts the like row and bumps the denormalized counter in one
// transaction. A second like from the same user fails with utils.ErrAlreadyLiked.
func (r *postRepository) LikePost(ctx context.Context, postID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&dbm.PostLike{}).
			Where("post_id = ? AND user_id = ?", postID, userID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return utils.ErrAlreadyLiked
		}

		like := dbm.PostLike{PostID: postID, UserID: userID}
		if err := tx.Create(&like).Error; err != nil {
			return err
		}

		return tx.Model(&dbm.Post{}).
			Where("id = ?", postID).
			UpdateColumn("likes_count", gorm.Expr("likes_count + 1")).Error
	})
}

func (r *postRepository) UnlikePost(ctx context.Context, postID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("post_id = ? AND user_id = ?", postID, userID).
			Delete(&dbm.PostLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrNotLiked
		}

		return tx.Model(&dbm.Post{}).
			Where("id = ? AND likes_count > 0", postID).
			UpdateColumn("likes_count", gorm.Expr("likes_count - 1")).Error
	})
}

func (r *postRepository) HasLiked(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.PostLike{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *postRepository) Follow(ctx context.Context, followerID, followingID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&dbm.UserFollow{}).
			Where("follower_id = ? AND following_id = ?", followerID, followingID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return utils.ErrAlreadyFollowing
		}

		follow := dbm.UserFollow{FollowerID: followerID, FollowingID: followingID}
		return tx.Create(&follow).Error
	})
}

func (r *postRepository) Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&dbm.UserFollow{}).Error
}

func (r *postRepository) IsFollowing(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.UserFollow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}
