package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	dbm "tripbuddy/internal/models/db_models"
	"tripbuddy/internal/models/request_models"
	"tripbuddy/internal/models/response_models"
	"tripbuddy/internal/planner"
	"tripbuddy/internal/repositories"
	"tripbuddy/pkg/utils"
)

type TripServiceInterface interface {
	ListTrips(ctx context.Context, userID uuid.UUID, page, pageSize int, status string) ([]response_models.TripResponse, error)
	GetTrip(ctx context.Context, tripID, requesterID uuid.UUID) (*response_models.TripDetailResponse, error)
	CreateTrip(ctx context.Context, userID uuid.UUID, req request_models.CreateTripRequest) (*response_models.TripResponse, error)
	UpdateTrip(ctx context.Context, tripID, userID uuid.UUID, req request_models.UpdateTripRequest) (*response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, tripID, userID uuid.UUID) error
	GetItinerary(ctx context.Context, tripID, requesterID uuid.UUID) ([]response_models.ItineraryDayResponse, error)
	CloneTrip(ctx context.Context, tripID, userID uuid.UUID) (uuid.UUID, error)
}

type TripService struct {
	tripRepo  repositories.TripRepository
	badgeRepo repositories.WishlistRepository
}

func NewTripService(tripRepo repositories.TripRepository, badgeRepo repositories.WishlistRepository) TripServiceInterface {
	return &TripService{
		tripRepo:  tripRepo,
		badgeRepo: badgeRepo,
	}
}

func (s *TripService) ListTrips(ctx context.Context, userID uuid.UUID, page, pageSize int, status string) ([]response_models.TripResponse, error) {
	if status != "" && !validTripStatus(status) {
		return nil, fmt.Errorf("%w: unknown trip status %q", utils.ErrInvalidInput, status)
	}

	trips, err := s.tripRepo.ListByUser(ctx, userID, page, pageSize, status)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for _, trip := range trips {
		out = append(out, buildTripResponse(&trip))
	}
	return out, nil
}

func (s *TripService) GetTrip(ctx context.Context, tripID, requesterID uuid.UUID) (*response_models.TripDetailResponse, error) {
	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil || !visibleTo(trip, requesterID) {
		return nil, utils.ErrTripNotFound
	}

	days := make([]response_models.ItineraryDayResponse, 0, len(trip.Days))
	for _, d := range trip.Days {
		days = append(days, buildDayResponse(&d))
	}

	return &response_models.TripDetailResponse{
		TripResponse: buildTripResponse(trip),
		TotalDays:    len(days),
		Days:         days,
	}, nil
}

func (s *TripService) CreateTrip(ctx context.Context, userID uuid.UUID, req request_models.CreateTripRequest) (*response_models.TripResponse, error) {
	start, err := time.ParseInLocation(planner.DateLayout, req.StartDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date range", utils.ErrInvalidInput)
	}
	end, err := time.ParseInLocation(planner.DateLayout, req.EndDate, time.UTC)
	if err != nil || end.Before(start) {
		return nil, fmt.Errorf("%w: invalid date range", utils.ErrInvalidInput)
	}
	if req.Budget < 0 {
		return nil, fmt.Errorf("%w: budget must be non-negative", utils.ErrInvalidInput)
	}

	trip := &dbm.Trip{
		UserID:      userID,
		Title:       req.Title,
		Source:      req.Source,
		Destination: req.Destination,
		StartDate:   start,
		EndDate:     end,
		Budget:      req.Budget,
		IsPublic:    req.IsPublic,
		Status:      dbm.TripStatusUpcoming,
		Tags:        req.Tags,
	}
	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	awardFirstTripBadge(ctx, s.tripRepo, s.badgeRepo, userID)

	resp := buildTripResponse(trip)
	return &resp, nil
}

func (s *TripService) UpdateTrip(ctx context.Context, tripID, userID uuid.UUID, req request_models.UpdateTripRequest) (*response_models.TripResponse, error) {
	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil || trip.UserID != userID {
		return nil, utils.ErrTripNotFound
	}

	if req.Title != nil {
		trip.Title = *req.Title
	}
	if req.IsPublic != nil {
		trip.IsPublic = *req.IsPublic
	}
	if req.Tags != nil {
		trip.Tags = req.Tags
	}
	completed := false
	if req.Status != nil {
		if !validTripStatus(*req.Status) {
			return nil, fmt.Errorf("%w: unknown trip status %q", utils.ErrInvalidInput, *req.Status)
		}
		completed = dbm.TripStatus(*req.Status) == dbm.TripStatusCompleted &&
			trip.Status != dbm.TripStatusCompleted
		trip.Status = dbm.TripStatus(*req.Status)
	}

	if err := s.tripRepo.Update(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if completed {
		badge := &dbm.TravelBadge{
			UserID:           userID,
			BadgeName:        "Globetrotter",
			BadgeDescription: "Completed a trip from start to finish",
		}
		if err := s.badgeRepo.AwardOnce(ctx, badge); err != nil {
			log.Printf("Failed to award Globetrotter badge: %v", err)
		}
	}

	resp := buildTripResponse(trip)
	return &resp, nil
}

func (s *TripService) DeleteTrip(ctx context.Context, tripID, userID uuid.UUID) error {
	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil || trip.UserID != userID {
		return utils.ErrTripNotFound
	}

	if err := s.tripRepo.Delete(ctx, tripID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TripService) GetItinerary(ctx context.Context, tripID, requesterID uuid.UUID) ([]response_models.ItineraryDayResponse, error) {
	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil || !visibleTo(trip, requesterID) {
		return nil, utils.ErrTripNotFound
	}

	days, err := s.tripRepo.ListDays(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ItineraryDayResponse, 0, len(days))
	for _, d := range days {
		out = append(out, buildDayResponse(&d))
	}
	return out, nil
}

// CloneTrip copies a public trip (or one of the caller's own) into a new
// private trip owned by the caller.
func (s *TripService) CloneTrip(ctx context.Context, tripID, userID uuid.UUID) (uuid.UUID, error) {
	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return uuid.Nil, utils.ErrTripNotFound
	}
	if !trip.IsPublic && trip.UserID != userID {
		return uuid.Nil, utils.ErrTripNotCloneable
	}

	newID, err := s.tripRepo.CloneTrip(ctx, tripID, userID)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	return newID, nil
}

func visibleTo(trip *dbm.Trip, requesterID uuid.UUID) bool {
	return trip.IsPublic || trip.UserID == requesterID
}

func validTripStatus(status string) bool {
	switch dbm.TripStatus(status) {
	case dbm.TripStatusUpcoming, dbm.TripStatusOngoing, dbm.TripStatusCompleted, dbm.TripStatusCancelled:
		return true
	}
	return false
}

func buildTripResponse(trip *dbm.Trip) response_models.TripResponse {
	return response_models.TripResponse{
		ID:          trip.ID,
		Title:       trip.Title,
		Source:      trip.Source,
		Destination: trip.Destination,
		StartDate:   trip.StartDate.Format(planner.DateLayout),
		EndDate:     trip.EndDate.Format(planner.DateLayout),
		Budget:      trip.Budget,
		IsPublic:    trip.IsPublic,
		Status:      string(trip.Status),
		ClonedFrom:  trip.ClonedFrom,
		Tags:        trip.Tags,
	}
}

func buildDayResponse(day *dbm.ItineraryDay) response_models.ItineraryDayResponse {
	var activities []planner.Activity
	if len(day.Activities) > 0 {
		if err := json.Unmarshal(day.Activities, &activities); err != nil {
			log.Printf("Corrupt activities blob on day %s: %v", day.ID, err)
		}
	}
	return response_models.ItineraryDayResponse{
		ID:         day.ID,
		DayNumber:  day.DayNumber,
		Date:       day.Date.Format(planner.DateLayout),
		Activities: activities,
	}
}
