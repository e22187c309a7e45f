package services_test

import (
	"context"

	"github.com/google/uuid"
	dbm "tripbuddy/internal/models/db_models"
	"tripbuddy/internal/repositories"
)

// Hand-written function-field mocks. Tests set only the fields they need;
// unset fields fall through to zero-value returns.

type mockTripRepo struct {
	CreateFn               func(ctx context.Context, trip *dbm.Trip) error
	GetByIDFn              func(ctx context.Context, tripID uuid.UUID) (*dbm.Trip, error)
	ListByUserFn           func(ctx context.Context, userID uuid.UUID, page, pageSize int, status string) ([]dbm.Trip, error)
	CountByUserFn          func(ctx context.Context, userID uuid.UUID) (int64, error)
	UpdateFn               func(ctx context.Context, trip *dbm.Trip) error
	DeleteFn               func(ctx context.Context, tripID uuid.UUID) error
	ListDaysFn             func(ctx context.Context, tripID uuid.UUID) ([]dbm.ItineraryDay, error)
	ReplaceItineraryDaysFn func(ctx context.Context, tripID uuid.UUID, days []dbm.ItineraryDay) error
	CloneTripFn            func(ctx context.Context, sourceID, newOwnerID uuid.UUID) (uuid.UUID, error)
}

var _ repositories.TripRepository = (*mockTripRepo)(nil)

func (m *mockTripRepo) Create(ctx context.Context, trip *dbm.Trip) error {
	if m.CreateFn == nil {
		return nil
	}
	return m.CreateFn(ctx, trip)
}

func (m *mockTripRepo) GetByID(ctx context.Context, tripID uuid.UUID) (*dbm.Trip, error) {
	if m.GetByIDFn == nil {
		return nil, nil
	}
	return m.GetByIDFn(ctx, tripID)
}

func (m *mockTripRepo) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int, status string) ([]dbm.Trip, error) {
	if m.ListByUserFn == nil {
		return nil, nil
	}
	return m.ListByUserFn(ctx, userID, page, pageSize, status)
}

func (m *mockTripRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	if m.CountByUserFn == nil {
		return 0, nil
	}
	return m.CountByUserFn(ctx, userID)
}

func (m *mockTripRepo) Update(ctx context.Context, trip *dbm.Trip) error {
	if m.UpdateFn == nil {
		return nil
	}
	return m.UpdateFn(ctx, trip)
}

func (m *mockTripRepo) Delete(ctx context.Context, tripID uuid.UUID) error {
	if m.DeleteFn == nil {
		return nil
	}
	return m.DeleteFn(ctx, tripID)
}

func (m *mockTripRepo) ListDays(ctx context.Context, tripID uuid.UUID) ([]dbm.ItineraryDay, error) {
	if m.ListDaysFn == nil {
		return nil, nil
	}
	return m.ListDaysFn(ctx, tripID)
}

func (m *mockTripRepo) ReplaceItineraryDays(ctx context.Context, tripID uuid.UUID, days []dbm.ItineraryDay) error {
	if m.ReplaceItineraryDaysFn == nil {
		return nil
	}
	return m.ReplaceItineraryDaysFn(ctx, tripID, days)
}

func (m *mockTripRepo) CloneTrip(ctx context.Context, sourceID, newOwnerID uuid.UUID) (uuid.UUID, error) {
	if m.CloneTripFn == nil {
		return uuid.Nil, nil
	}
	return m.CloneTripFn(ctx, sourceID, newOwnerID)
}

type mockWishlistRepo struct {
	AddWishFn    func(ctx context.Context, wish *dbm.WishDestination) error
	ListWishesFn func(ctx context.Context, userID uuid.UUID) ([]dbm.WishDestination, error)
	RemoveWishFn func(ctx context.Context, wishID, userID uuid.UUID) error
	ListBadgesFn func(ctx context.Context, userID uuid.UUID) ([]dbm.TravelBadge, error)
	AwardOnceFn  func(ctx context.Context, badge *dbm.TravelBadge) error
}

var _ repositories.WishlistRepository = (*mockWishlistRepo)(nil)

func (m *mockWishlistRepo) AddWish(ctx context.Context, wish *dbm.WishDestination) error {
	if m.AddWishFn == nil {
		return nil
	}
	return m.AddWishFn(ctx, wish)
}

func (m *mockWishlistRepo) ListWishes(ctx context.Context, userID uuid.UUID) ([]dbm.WishDestination, error) {
	if m.ListWishesFn == nil {
		return nil, nil
	}
	return m.ListWishesFn(ctx, userID)
}

func (m *mockWishlistRepo) RemoveWish(ctx context.Context, wishID, userID uuid.UUID) error {
	if m.RemoveWishFn == nil {
		return nil
	}
	return m.RemoveWishFn(ctx, wishID, userID)
}

func (m *mockWishlistRepo) ListBadges(ctx context.Context, userID uuid.UUID) ([]dbm.TravelBadge, error) {
	if m.ListBadgesFn == nil {
		return nil, nil
	}
	return m.ListBadgesFn(ctx, userID)
}

func (m *mockWishlistRepo) AwardOnce(ctx context.Context, badge *dbm.TravelBadge) error {
	if m.AwardOnceFn == nil {
		return nil
	}
	return m.AwardOnceFn(ctx, badge)
}

type mockBookingRepo struct {
	CreateFn       func(ctx context.Context, booking *dbm.Booking) error
	GetByIDFn      func(ctx context.Context, bookingID uuid.UUID) (*dbm.Booking, error)
	ListByTripFn   func(ctx context.Context, tripID uuid.UUID) ([]dbm.Booking, error)
	UpdateStatusFn func(ctx context.Context, bookingID uuid.UUID, status dbm.BookingStatus) error
}

var _ repositories.BookingRepository = (*mockBookingRepo)(nil)

func (m *mockBookingRepo) Create(ctx context.Context, booking *dbm.Booking) error {
	if m.CreateFn == nil {
		return nil
	}
	return m.CreateFn(ctx, booking)
}

func (m *mockBookingRepo) GetByID(ctx context.Context, bookingID uuid.UUID) (*dbm.Booking, error) {
	if m.GetByIDFn == nil {
		return nil, nil
	}
	return m.GetByIDFn(ctx, bookingID)
}

func (m *mockBookingRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.Booking, error) {
	if m.ListByTripFn == nil {
		return nil, nil
	}
	return m.ListByTripFn(ctx, tripID)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status dbm.BookingStatus) error {
	if m.UpdateStatusFn == nil {
		return nil
	}
	return m.UpdateStatusFn(ctx, bookingID, status)
}

type mockPostRepo struct {
	CreatePostFn  func(ctx context.Context, post *dbm.Post) error
	GetPostByIDFn func(ctx context.Context, postID uuid.UUID) (*dbm.Post, error)
	ListFeedFn    func(ctx context.Context, page, pageSize int) ([]dbm.Post, error)
	LikePostFn    func(ctx context.Context, postID, userID uuid.UUID) error
	UnlikePostFn  func(ctx context.Context, postID, userID uuid.UUID) error
	HasLikedFn    func(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	FollowFn      func(ctx context.Context, followerID, followingID uuid.UUID) error
	UnfollowFn    func(ctx context.Context, followerID, followingID uuid.UUID) error
	IsFollowingFn func(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
}

var _ repositories.PostRepository = (*mockPostRepo)(nil)

func (m *mockPostRepo) CreatePost(ctx context.Context, post *dbm.Post) error {
	if m.CreatePostFn == nil {
		return nil
	}
	return m.CreatePostFn(ctx, post)
}

func (m *mockPostRepo) GetPostByID(ctx context.Context, postID uuid.UUID) (*dbm.Post, error) {
	if m.GetPostByIDFn == nil {
		return nil, nil
	}
	return m.GetPostByIDFn(ctx, postID)
}

func (m *mockPostRepo) ListFeed(ctx context.Context, page, pageSize int) ([]dbm.Post, error) {
	if m.ListFeedFn == nil {
		return nil, nil
	}
	return m.ListFeedFn(ctx, page, pageSize)
}

func (m *mockPostRepo) LikePost(ctx context.Context, postID, userID uuid.UUID) error {
	if m.LikePostFn == nil {
		return nil
	}
	return m.LikePostFn(ctx, postID, userID)
}

func (m *mockPostRepo) UnlikePost(ctx context.Context, postID, userID uuid.UUID) error {
	if m.UnlikePostFn == nil {
		return nil
	}
	return m.UnlikePostFn(ctx, postID, userID)
}

func (m *mockPostRepo) HasLiked(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	if m.HasLikedFn == nil {
		return false, nil
	}
	return m.HasLikedFn(ctx, postID, userID)
}

func (m *mockPostRepo) Follow(ctx context.Context, followerID, followingID uuid.UUID) error {
	if m.FollowFn == nil {
		return nil
	}
	return m.FollowFn(ctx, followerID, followingID)
}

func (m *mockPostRepo) Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	if m.UnfollowFn == nil {
		return nil
	}
	return m.UnfollowFn(ctx, followerID, followingID)
}

func (m *mockPostRepo) IsFollowing(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	if m.IsFollowingFn == nil {
		return false, nil
	}
	return m.IsFollowingFn(ctx, followerID, followingID)
}

type mockAccountRepo struct {
	InsertFn      func(ctx context.Context, account *dbm.Account) error
	FindByEmailFn func(ctx context.Context, email string) (*dbm.Account, error)
	FindByIDFn    func(ctx context.Context, accountID uuid.UUID) (*dbm.Account, error)
	UpdateFn      func(ctx context.Context, account *dbm.Account) error
}

var _ repositories.AccountRepository = (*mockAccountRepo)(nil)

func (m *mockAccountRepo) Insert(ctx context.Context, account *dbm.Account) error {
	if m.InsertFn == nil {
		return nil
	}
	return m.InsertFn(ctx, account)
}

func (m *mockAccountRepo) FindByEmail(ctx context.Context, email string) (*dbm.Account, error) {
	if m.FindByEmailFn == nil {
		return nil, nil
	}
	return m.FindByEmailFn(ctx, email)
}

func (m *mockAccountRepo) FindByID(ctx context.Context, accountID uuid.UUID) (*dbm.Account, error) {
	if m.FindByIDFn == nil {
		return nil, nil
	}
	return m.FindByIDFn(ctx, accountID)
}

func (m *mockAccountRepo) Update(ctx context.Context, account *dbm.Account) error {
	if m.UpdateFn == nil {
		return nil
	}
	return m.UpdateFn(ctx, account)
}
