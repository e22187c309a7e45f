package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dbm "tripbuddy/internal/models/db_models"
	"tripbuddy/internal/models/request_models"
	"tripbuddy/internal/services"
	"tripbuddy/pkg/utils"
)

func ownedTrip(ownerID uuid.UUID, public bool) *dbm.Trip {
	return &dbm.Trip{
		BaseModel:   dbm.BaseModel{ID: uuid.New()},
		UserID:      ownerID,
		Title:       "Alps Hiking Week",
		Destination: "Innsbruck",
		StartDate:   time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 7, 7, 0, 0, 0, 0, time.UTC),
		Budget:      2000,
		IsPublic:    public,
		Status:      dbm.TripStatusUpcoming,
	}
}

// TestCreateTrip_validatesDatesAndBudget checks the request preconditions
// before anything touches the repository.
func TestCreateTrip_validatesDatesAndBudget(t *testing.T) {
	svc := services.NewTripService(&mockTripRepo{}, &mockWishlistRepo{})

	base := request_models.CreateTripRequest{
		Title:       "Test",
		Destination: "Lisbon",
		StartDate:   "2026-06-10",
		EndDate:     "2026-06-13",
		Budget:      500,
	}

	bad := base
	bad.StartDate = "10-06-2026"
	_, err := svc.CreateTrip(context.Background(), uuid.New(), bad)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	bad = base
	bad.EndDate = "2026-06-01"
	_, err = svc.CreateTrip(context.Background(), uuid.New(), bad)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	bad = base
	bad.Budget = -50
	_, err = svc.CreateTrip(context.Background(), uuid.New(), bad)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestCreateTrip_success(t *testing.T) {
	userID := uuid.New()
	var savedTrip *dbm.Trip
	tripRepo := &mockTripRepo{
		CreateFn: func(_ context.Context, trip *dbm.Trip) error {
			trip.ID = uuid.New()
			savedTrip = trip
			return nil
		},
		CountByUserFn: func(_ context.Context, _ uuid.UUID) (int64, error) {
			return 1, nil
		},
	}
	var awarded *dbm.TravelBadge
	badgeRepo := &mockWishlistRepo{
		AwardOnceFn: func(_ context.Context, badge *dbm.TravelBadge) error {
			awarded = badge
			return nil
		},
	}

	svc := services.NewTripService(tripRepo, badgeRepo)
	resp, err := svc.CreateTrip(context.Background(), userID, request_models.CreateTripRequest{
		Title:       "City Break",
		Destination: "Porto",
		StartDate:   "2026-09-01",
		EndDate:     "2026-09-04",
		Budget:      800,
		IsPublic:    true,
		Tags:        []string{"food"},
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "City Break", resp.Title)
	assert.Equal(t, "2026-09-01", resp.StartDate)
	assert.Equal(t, "2026-09-04", resp.EndDate)
	assert.Equal(t, string(dbm.TripStatusUpcoming), resp.Status)

	require.NotNil(t, savedTrip)
	assert.Equal(t, userID, savedTrip.UserID)

	require.NotNil(t, awarded)
	assert.Equal(t, "First Trip", awarded.BadgeName)
}

// TestGetTrip_visibility: a private trip is visible to its owner only; to
// everyone else it does not exist.
func TestGetTrip_visibility(t *testing.T) {
	ownerID := uuid.New()
	trip := ownedTrip(ownerID, false)

	tripRepo := &mockTripRepo{
		GetByIDFn: func(_ context.Context, _ uuid.UUID) (*dbm.Trip, error) {
			return trip, nil
		},
	}
	svc := services.NewTripService(tripRepo, &mockWishlistRepo{})

	resp, err := svc.GetTrip(context.Background(), trip.ID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, trip.ID, resp.ID)

	_, err = svc.GetTrip(context.Background(), trip.ID, uuid.New())
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestGetTrip_publicVisibleToStrangers(t *testing.T) {
	trip := ownedTrip(uuid.New(), true)
	blob, err := json.Marshal([]map[string]any{{"time": "09:00", "title": "Museum"}})
	require.NoError(t, err)
	trip.Days = []dbm.ItineraryDay{
		{
			BaseModel:  dbm.BaseModel{ID: uuid.New()},
			TripID:     trip.ID,
			DayNumber:  1,
			Date:       trip.StartDate,
			Activities: blob,
		},
	}

	tripRepo := &mockTripRepo{
		GetByIDFn: func(_ context.Context, _ uuid.UUID) (*dbm.Trip, error) {
			return trip, nil
		},
	}
	svc := services.NewTripService(tripRepo, &mockWishlistRepo{})

	resp, err := svc.GetTrip(context.Background(), trip.ID, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalDays)
	require.Len(t, resp.Days, 1)
	assert.Equal(t, 1, resp.Days[0].DayNumber)
	require.Len(t, resp.Days[0].Activities, 1)
	assert.Equal(t, "Museum", resp.Days[0].Activities[0].Title)
}

func TestListTrips_rejectsUnknownStatus(t *testing.T) {
	svc := services.NewTripService(&mockTripRepo{}, &mockWishlistRepo{})

	_, err := svc.ListTrips(context.Background(), uuid.New(), 1, 20, "archived")

	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

// TestUpdateTrip_completionAwardsBadge: the Globetrotter badge fires exactly
// on the transition into completed, not on a re-save of an already completed
// trip.
func TestUpdateTrip_completionAwardsBadge(t *testing.T) {
	ownerID := uuid.New()
	trip := ownedTrip(ownerID, false)

	tripRepo := &mockTripRepo{
		GetByIDFn: func(_ context.Context, _ uuid.UUID) (*dbm.Trip, error) {
			return trip, nil
		},
	}
	awardCalls := 0
	badgeRepo := &mockWishlistRepo{
		AwardOnceFn: func(_ context.Context, badge *dbm.TravelBadge) error {
			awardCalls++
			assert.Equal(t, "Globetrotter", badge.BadgeName)
			return nil
		},
	}
	svc := services.NewTripService(tripRepo, badgeRepo)

	completed := string(dbm.TripStatusCompleted)
	_, err := svc.UpdateTrip(context.Background(), trip.ID, ownerID, request_models.UpdateTripRequest{Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, 1, awardCalls)

	// Trip is now completed; saving it again must not re-award.
	_, err = svc.UpdateTrip(context.Background(), trip.ID, ownerID, request_models.UpdateTripRequest{Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, 1, awardCalls)
}

func TestUpdateTrip_notOwner(t *testing.T) {
	trip := ownedTrip(uuid.New(), true)
	tripRepo := &mockTripRepo{
		GetByIDFn: func(_ context.Context, _ uuid.UUID) (*dbm.Trip, error) {
			return trip, nil
		},
	}
	svc := services.NewTripService(tripRepo, &mockWishlistRepo{})

	title := "Hijacked"
	_, err := svc.UpdateTrip(context.Background(), trip.ID, uuid.New(), request_models.UpdateTripRequest{Title: &title})

	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestDeleteTrip_notOwner(t *testing.T) {
	trip := ownedTrip(uuid.New(), true)
	tripRepo := &mockTripRepo{
		GetByIDFn: func(_ context.Context, _ uuid.UUID) (*dbm.Trip, error) {
			return trip, nil
		},
		DeleteFn: func(_ context.Context, _ uuid.UUID) error {
			t.Fatal("Delete should not be reached for a non-owner")
			return nil
		},
	}
	svc := services.NewTripService(tripRepo, &mockWishlistRepo{})

	err := svc.DeleteTrip(context.Background(), trip.ID, uuid.New())

	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

// TestCloneTrip covers the three clone outcomes: a public trip clones, the
// owner's own private trip clones, and a stranger's private trip is refused.
func TestCloneTrip(t *testing.T) {
	ownerID := uuid.New()
	strangerID := uuid.New()
	newID := uuid.New()

	t.Run("public trip clones for anyone", func(t *testing.T) {
		trip := ownedTrip(ownerID, true)
		tripRepo := &mockTripRepo{
			GetByIDFn: func(_ context.Context, _ uuid.UUID) (*dbm.Trip, error) {
				return trip, nil
			},
			CloneTripFn: func(_ context.Context, sourceID, newOwnerID uuid.UUID) (uuid.UUID, error) {
				assert.Equal(t, trip.ID, sourceID)
				assert.Equal(t, strangerID, newOwnerID)
				return newID, nil
			},
		}
		svc := services.NewTripService(tripRepo, &mockWishlistRepo{})

		got, err := svc.CloneTrip(context.Background(), trip.ID, strangerID)
		require.NoError(t, err)
		assert.Equal(t, newID, got)
	})

	t.Run("own private trip clones", func(t *testing.T) {
		trip := ownedTrip(ownerID, false)
		tripRepo := &mockTripRepo{
			GetByIDFn: func(_ context.Context, _ uuid.UUID) (*dbm.Trip, error) {
				return trip, nil
			},
			CloneTripFn: func(_ context.Context, _, _ uuid.UUID) (uuid.UUID, error) {
				return newID, nil
			},
		}
		svc := services.NewTripService(tripRepo, &mockWishlistRepo{})

		got, err := svc.CloneTrip(context.Background(), trip.ID, ownerID)
		require.NoError(t, err)
		assert.Equal(t, newID, got)
	})

	t.Run("foreign private trip is refused", func(t *testing.T) {
		trip := ownedTrip(ownerID, false)
		tripRepo := &mockTripRepo{
			GetByIDFn: func(_ context.Context, _ uuid.UUID) (*dbm.Trip, error) {
				return trip, nil
			},
		}
		svc := services.NewTripService(tripRepo, &mockWishlistRepo{})

		_, err := svc.CloneTrip(context.Background(), trip.ID, strangerID)
		assert.ErrorIs(t, err, utils.ErrTripNotCloneable)
	})

	t.Run("missing trip", func(t *testing.T) {
		svc := services.NewTripService(&mockTripRepo{}, &mockWishlistRepo{})

		_, err := svc.CloneTrip(context.Background(), uuid.New(), strangerID)
		assert.ErrorIs(t, err, utils.ErrTripNotFound)
	})
}

func TestGetItinerary_repoError(t *testing.T) {
	ownerID := uuid.New()
	trip := ownedTrip(ownerID, false)
	tripRepo := &mockTripRepo{
		GetByIDFn: func(_ context.Context, _ uuid.UUID) (*dbm.Trip, error) {
			return trip, nil
		},
		ListDaysFn: func(_ context.Context, _ uuid.UUID) ([]dbm.ItineraryDay, error) {
			return nil, errors.New("timeout")
		},
	}
	svc := services.NewTripService(tripRepo, &mockWishlistRepo{})

	_, err := svc.GetItinerary(context.Background(), trip.ID, ownerID)

	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
