package services

import (
	"context"

	"github.com/google/uuid"
	dbm "tripbuddy/internal/models/db_models"
	"tripbuddy/internal/models/request_models"
	"tripbuddy/internal/models/response_models"
	"tripbuddy/internal/repositories"
	"tripbuddy/pkg/utils"
)

type WishlistServiceInterface interface {
	AddWishDestination(ctx context.Context, userID uuid.UUID, req request_models.AddWishDestinationRequest) (*response_models.WishDestinationResponse, error)
	ListWishDestinations(ctx context.Context, userID uuid.UUID) ([]response_models.WishDestinationResponse, error)
	RemoveWishDestination(ctx context.Context, wishID, userID uuid.UUID) error
	ListBadges(ctx context.Context, userID uuid.UUID) ([]response_models.TravelBadgeResponse, error)
}

type WishlistService struct {
	wishlistRepo repositories.WishlistRepository
}

func NewWishlistService(wishlistRepo repositories.WishlistRepository) WishlistServiceInterface {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
	}
}

func (w *WishlistService) AddWishDestination(ctx context.Context, userID uuid.UUID, req request_models.AddWishDestinationRequest) (*response_models.WishDestinationResponse, error) {
	wish := &dbm.WishDestination{
		UserID:      userID,
		Destination: req.Destination,
		Notes:       req.Notes,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}
	if err := w.wishlistRepo.AddWish(ctx, wish); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.WishDestinationResponse{
		ID:          wish.ID,
		Destination: wish.Destination,
		Notes:       wish.Notes,
		Latitude:    wish.Latitude,
		Longitude:   wish.Longitude,
		CreatedAt:   wish.CreatedAt,
	}, nil
}

func (w *WishlistService) ListWishDestinations(ctx context.Context, userID uuid.UUID) ([]response_models.WishDestinationResponse, error) {
	wishes, err := w.wishlistRepo.ListWishes(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.WishDestinationResponse, 0, len(wishes))
	for _, wish := range wishes {
		out = append(out, response_models.WishDestinationResponse{
			ID:          wish.ID,
			Destination: wish.Destination,
			Notes:       wish.Notes,
			Latitude:    wish.Latitude,
			Longitude:   wish.Longitude,
			CreatedAt:   wish.CreatedAt,
		})
	}
	return out, nil
}

func (w *WishlistService) RemoveWishDestination(ctx context.Context, wishID, userID uuid.UUID) error {
	if err := w.wishlistRepo.RemoveWish(ctx, wishID, userID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (w *WishlistService) ListBadges(ctx context.Context, userID uuid.UUID) ([]response_models.TravelBadgeResponse, error) {
	badges, err := w.wishlistRepo.ListBadges(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TravelBadgeResponse, 0, len(badges))
	for _, badge := range badges {
		out = append(out, response_models.TravelBadgeResponse{
			ID:               badge.ID,
			BadgeName:        badge.BadgeName,
			BadgeDescription: badge.BadgeDescription,
			BadgeImageURL:    badge.BadgeImageURL,
			EarnedAt:         badge.EarnedAt,
		})
	}
	return out, nil
}
