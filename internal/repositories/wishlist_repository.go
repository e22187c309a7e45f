package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "tripbuddy/internal/models/db_models"
)

type WishlistRepository interface {
	AddWish(ctx context.Context, wish *dbm.WishDestination) error
	ListWishes(ctx context.Context, userID uuid.UUID) ([]dbm.WishDestination, error)
	RemoveWish(ctx context.Context, wishID, userID uuid.UUID) error
	ListBadges(ctx context.Context, userID uuid.UUID) ([]dbm.TravelBadge, error)
	AwardOnce(ctx context.Context, badge *dbm.TravelBadge) error
}

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) AddWish(ctx context.Context, wish *dbm.WishDestination) error {
	return r.db.WithContext(ctx).Create(wish).Error
}

func (r *wishlistRepository) ListWishes(ctx context.Context, userID uuid.UUID) ([]dbm.WishDestination, error) {
	var wishes []dbm.WishDestination
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&wishes).Error
	if err != nil {
		return nil, err
	}
	return wishes, nil
}

func (r *wishlistRepository) RemoveWish(ctx context.Context, wishID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", wishID, userID).
		Delete(&dbm.WishDestination{}).Error
}

func (r *wishlistRepository) ListBadges(ctx context.Context, userID uuid.UUID) ([]dbm.TravelBadge, error) {
	var badges []dbm.TravelBadge
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("earned_at DESC").
		Find(&badges).Error
	if err != nil {
		return nil, err
	}
	return badges, nil
}

// AwardOnce inserts the badge unless the user already holds one with the same
// name. Awarding twice is a no-op, not an error.
func (r *wishlistRepository) AwardOnce(ctx context.Context, badge *dbm.TravelBadge) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&dbm.TravelBadge{}).
			Where("user_id = ? AND badge_name = ?", badge.UserID, badge.BadgeName).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		return tx.Create(badge).Error
	})
}
