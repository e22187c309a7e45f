package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripbuddy/internal/api"
	"tripbuddy/internal/api/controllers"
	"tripbuddy/internal/models/response_models"
	"tripbuddy/internal/services"
	"tripbuddy/pkg/utils"
)

// Stubs embed the service interface and override only the methods a route
// under test invokes; anything else panics, which would flag a wrong route
// binding immediately.

type stubTripService struct {
	services.TripServiceInterface
	onGetTrip func(tripID, requesterID uuid.UUID)
	onClone   func(tripID, userID uuid.UUID)
}

func (s *stubTripService) GetTrip(_ context.Context, tripID, requesterID uuid.UUID) (*response_models.TripDetailResponse, error) {
	s.onGetTrip(tripID, requesterID)
	return &response_models.TripDetailResponse{}, nil
}

func (s *stubTripService) CloneTrip(_ context.Context, tripID, userID uuid.UUID) (uuid.UUID, error) {
	s.onClone(tripID, userID)
	return uuid.New(), nil
}

type stubSocialService struct {
	services.SocialServiceInterface
	onLike   func(postID, userID uuid.UUID)
	onFollow func(followerID, followingID uuid.UUID)
}

func (s *stubSocialService) LikePost(_ context.Context, postID, userID uuid.UUID) error {
	s.onLike(postID, userID)
	return nil
}

func (s *stubSocialService) Follow(_ context.Context, followerID, followingID uuid.UUID) error {
	s.onFollow(followerID, followingID)
	return nil
}

type stubBookingService struct {
	services.BookingServiceInterface
	onCancel func(bookingID, userID uuid.UUID)
	onList   func(tripID, userID uuid.UUID)
}

func (s *stubBookingService) CancelBooking(_ context.Context, bookingID, userID uuid.UUID) error {
	s.onCancel(bookingID, userID)
	return nil
}

func (s *stubBookingService) ListBookings(_ context.Context, tripID, userID uuid.UUID) ([]response_models.BookingResponse, error) {
	s.onList(tripID, userID)
	return nil, nil
}

type stubWishlistService struct {
	services.WishlistServiceInterface
	onRemove func(wishID, userID uuid.UUID)
}

func (s *stubWishlistService) RemoveWishDestination(_ context.Context, wishID, userID uuid.UUID) error {
	s.onRemove(wishID, userID)
	return nil
}

type routerStubs struct {
	trip     *stubTripService
	social   *stubSocialService
	booking  *stubBookingService
	wishlist *stubWishlistService
}

func newTestRouter(stubs routerStubs) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api.RegisterRoutes(r,
		controllers.NewItineraryController(&stubItineraryService{}),
		controllers.NewTripController(stubs.trip),
		controllers.NewBookingController(stubs.booking),
		controllers.NewSocialController(stubs.social),
		controllers.NewAccountController(&stubAccountService{}),
		controllers.NewWishlistController(stubs.wishlist))
	return r
}

type stubItineraryService struct {
	services.ItineraryServiceInterface
}

type stubAccountService struct {
	services.AccountServiceInterface
}

func doAuthed(t *testing.T, r *gin.Engine, method, path string, userID uuid.UUID) *httptest.ResponseRecorder {
	t.Helper()
	token, err := utils.CreateToken(userID)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// TestRegisteredRoutes_reachHandlers drives the production route table end to
// end for every ID-addressed endpoint: each request must land in its handler
// with the path UUID intact rather than die in parameter parsing.
func TestRegisteredRoutes_reachHandlers(t *testing.T) {
	callerID := uuid.New()
	targetID := uuid.New()

	var got uuid.UUID
	capture := func(id, user uuid.UUID) {
		assert.Equal(t, callerID, user)
		got = id
	}

	stubs := routerStubs{
		trip:     &stubTripService{onGetTrip: capture, onClone: capture},
		social:   &stubSocialService{onLike: capture, onFollow: func(follower, following uuid.UUID) { capture(following, follower) }},
		booking:  &stubBookingService{onCancel: capture, onList: capture},
		wishlist: &stubWishlistService{onRemove: capture},
	}
	r := newTestRouter(stubs)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/trips/" + targetID.String()},
		{http.MethodGet, "/api/v1/trips/" + targetID.String() + "/bookings"},
		{http.MethodPost, "/api/v1/trips/" + targetID.String() + "/clone"},
		{http.MethodDelete, "/api/v1/bookings/" + targetID.String()},
		{http.MethodPost, "/api/v1/posts/" + targetID.String() + "/like"},
		{http.MethodPost, "/api/v1/follows/" + targetID.String()},
		{http.MethodDelete, "/api/v1/wishlist/" + targetID.String()},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			got = uuid.Nil

			w := doAuthed(t, r, route.method, route.path, callerID)

			require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
			assert.Equal(t, targetID, got, "handler did not receive the path UUID")
		})
	}
}

// TestRegisteredRoutes_malformedID verifies a non-UUID path segment is a 400,
// not a routing miss.
func TestRegisteredRoutes_malformedID(t *testing.T) {
	stubs := routerStubs{
		trip:     &stubTripService{onGetTrip: func(_, _ uuid.UUID) { t.Fatal("handler body must not run") }},
		social:   &stubSocialService{},
		booking:  &stubBookingService{},
		wishlist: &stubWishlistService{},
	}
	r := newTestRouter(stubs)

	w := doAuthed(t, r, http.MethodGet, "/api/v1/trips/not-a-uuid", uuid.New())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestRegisteredRoutes_requireAuth verifies the protected groups reject
// anonymous requests outright.
func TestRegisteredRoutes_requireAuth(t *testing.T) {
	r := newTestRouter(routerStubs{
		trip:     &stubTripService{},
		social:   &stubSocialService{},
		booking:  &stubBookingService{},
		wishlist: &stubWishlistService{},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trips/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
