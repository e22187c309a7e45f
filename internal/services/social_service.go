package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	dbm "tripbuddy/internal/models/db_models"
	"tripbuddy/internal/models/request_models"
	"tripbuddy/internal/models/response_models"
	"tripbuddy/internal/planner"
	"tripbuddy/internal/repositories"
	mem "tripbuddy/pkg/memcache"
	"tripbuddy/pkg/utils"
)

const (
	feedCacheTTL      = 30 * time.Second
	feedCachedPageMax = 3
)

type SocialServiceInterface interface {
	GetFeed(ctx context.Context, page, pageSize int) ([]response_models.PostResponse, error)
	CreatePost(ctx context.Context, userID uuid.UUID, req request_models.CreatePostRequest) (*response_models.PostResponse, error)
	LikePost(ctx context.Context, postID, userID uuid.UUID) error
	UnlikePost(ctx context.Context, postID, userID uuid.UUID) error
	HasLiked(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	Follow(ctx context.Context, followerID, followingID uuid.UUID) error
	Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error
	IsFollowing(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
}

type SocialService struct {
	postRepo  repositories.PostRepository
	tripRepo  repositories.TripRepository
	feedCache mem.FeedCacheStore
}

func NewSocialService(postRepo repositories.PostRepository, tripRepo repositories.TripRepository, feedCache mem.FeedCacheStore) SocialServiceInterface {
	return &SocialService{
		postRepo:  postRepo,
		tripRepo:  tripRepo,
		feedCache: feedCache,
	}
}

// GetFeed serves the first pages from the in-process cache; deeper pages are
// rarely requested and always go to the database.
func (s *SocialService) GetFeed(ctx context.Context, page, pageSize int) ([]response_models.PostResponse, error) {
	key := fmt.Sprintf("feed:p%d:s%d", page, pageSize)
	if page <= feedCachedPageMax {
		if cached, ok := s.feedCache.Get(key); ok {
			if posts, ok := cached.([]response_models.PostResponse); ok {
				return posts, nil
			}
		}
	}

	posts, err := s.postRepo.ListFeed(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, buildPostResponse(&p))
	}

	if page <= feedCachedPageMax {
		s.feedCache.Set(key, out, feedCacheTTL)
	}
	return out, nil
}

func (s *SocialService) CreatePost(ctx context.Context, userID uuid.UUID, req request_models.CreatePostRequest) (*response_models.PostResponse, error) {
	tripID, err := uuid.Parse(req.TripID)
	if err != nil {
		return nil, utils.ErrTripNotFound
	}

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil || trip.UserID != userID {
		return nil, utils.ErrTripNotFound
	}

	post := &dbm.Post{
		UserID:    userID,
		TripID:    tripID,
		Content:   req.Content,
		ImageURLs: req.ImageURLs,
	}
	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, utils.ErrDatabaseError
	}
	s.feedCache.InvalidateAll()

	post.Trip = trip
	resp := buildPostResponse(post)
	return &resp, nil
}

func (s *SocialService) LikePost(ctx context.Context, postID, userID uuid.UUID) error {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if post == nil {
		return utils.ErrPostNotFound
	}

	if err := s.postRepo.LikePost(ctx, postID, userID); err != nil {
		if err == utils.ErrAlreadyLiked {
			return err
		}
		return utils.ErrDatabaseError
	}
	s.feedCache.InvalidateAll()
	return nil
}

func (s *SocialService) UnlikePost(ctx context.Context, postID, userID uuid.UUID) error {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if post == nil {
		return utils.ErrPostNotFound
	}

	if err := s.postRepo.UnlikePost(ctx, postID, userID); err != nil {
		if err == utils.ErrNotLiked {
			return err
		}
		return utils.ErrDatabaseError
	}
	s.feedCache.InvalidateAll()
	return nil
}

func (s *SocialService) HasLiked(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	liked, err := s.postRepo.HasLiked(ctx, postID, userID)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	return liked, nil
}

func (s *SocialService) Follow(ctx context.Context, followerID, followingID uuid.UUID) error {
	if followerID == followingID {
		return fmt.Errorf("%w: cannot follow yourself", utils.ErrInvalidInput)
	}

	if err := s.postRepo.Follow(ctx, followerID, followingID); err != nil {
		if err == utils.ErrAlreadyFollowing {
			return err
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *SocialService) Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	if err := s.postRepo.Unfollow(ctx, followerID, followingID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *SocialService) IsFollowing(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	following, err := s.postRepo.IsFollowing(ctx, followerID, followingID)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	return following, nil
}

func buildPostResponse(p *dbm.Post) response_models.PostResponse {
	resp := response_models.PostResponse{
		ID:         p.ID,
		Content:    p.Content,
		ImageURLs:  p.ImageURLs,
		LikesCount: p.LikesCount,
		CreatedAt:  p.CreatedAt,
	}
	if p.User != nil {
		resp.User = response_models.UserSummary{
			ID:        p.User.ID,
			Username:  p.User.Username,
			AvatarURL: p.User.AvatarURL,
		}
	}
	if p.Trip != nil {
		resp.Trip = &response_models.TripSummary{
			ID:          p.Trip.ID,
			Title:       p.Trip.Title,
			Destination: p.Trip.Destination,
			StartDate:   p.Trip.StartDate.Format(planner.DateLayout),
			EndDate:     p.Trip.EndDate.Format(planner.DateLayout),
			IsPublic:    p.Trip.IsPublic,
		}
	}
	return resp
}
