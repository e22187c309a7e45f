package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	dbm "tripbuddy/internal/models/db_models"
	"tripbuddy/internal/models/response_models"
	"tripbuddy/internal/planner"
	"tripbuddy/internal/repositories"
)

type ItineraryServiceInterface interface {
	Generate(req planner.TripRequest) ([]planner.DayPlan, error)
	GenerateAndSave(ctx context.Context, userID uuid.UUID, req planner.TripRequest, title, source string) (*response_models.GenerateItineraryResponse, error)
}

type ItineraryService struct {
	tripRepo  repositories.TripRepository
	badgeRepo repositories.WishlistRepository
}

func NewItineraryService(tripRepo repositories.TripRepository, badgeRepo repositories.WishlistRepository) ItineraryServiceInterface {
	return &ItineraryService{
		tripRepo:  tripRepo,
		badgeRepo: badgeRepo,
	}
}

// Generate runs the planner without touching storage.
func (s *ItineraryService) Generate(req planner.TripRequest) ([]planner.DayPlan, error) {
	return planner.Generate(req)
}

// GenerateAndSave generates the itinerary, creates a trip for the user and
// persists the day plans. The returned error covers generation only: once
// the planner has produced an itinerary it is always handed back to the
// caller, even when the save fails. Saved and TripID on the response tell
// the caller what actually got stored.
func (s *ItineraryService) GenerateAndSave(
	ctx context.Context,
	userID uuid.UUID,
	req planner.TripRequest,
	title, source string,
) (*response_models.GenerateItineraryResponse, error) {

	itinerary, err := planner.Generate(req)
	if err != nil {
		return nil, err
	}

	resp := &response_models.GenerateItineraryResponse{Itinerary: itinerary}

	startDate, _ := time.ParseInLocation(planner.DateLayout, req.StartDate, time.UTC)
	endDate, _ := time.ParseInLocation(planner.DateLayout, req.EndDate, time.UTC)

	if title == "" {
		title = "Trip to " + req.Destination
	}

	trip := &dbm.Trip{
		UserID:      userID,
		Title:       title,
		Source:      source,
		Destination: req.Destination,
		StartDate:   startDate,
		EndDate:     endDate,
		Budget:      req.Budget,
		IsPublic:    false,
		Status:      dbm.TripStatusUpcoming,
		Tags:        req.Interests,
	}
	if err := s.tripRepo.Create(ctx, trip); err != nil {
		log.Printf("Failed to save generated trip: %v", err)
		return resp, nil
	}
	resp.TripID = &trip.ID

	days, err := materializeDays(itinerary)
	if err != nil {
		log.Printf("Failed to encode itinerary days: %v", err)
		return resp, nil
	}
	if err := s.tripRepo.ReplaceItineraryDays(ctx, trip.ID, days); err != nil {
		log.Printf("Failed to save itinerary days: %v", err)
		return resp, nil
	}
	resp.Saved = true

	awardFirstTripBadge(ctx, s.tripRepo, s.badgeRepo, userID)

	return resp, nil
}

// materializeDays converts planner output into rows shaped
// {trip_id, day_number, date, activities} with activities as a JSON blob.
func materializeDays(itinerary []planner.DayPlan) ([]dbm.ItineraryDay, error) {
	days := make([]dbm.ItineraryDay, 0, len(itinerary))
	for _, d := range itinerary {
		blob, err := json.Marshal(d.Activities)
		if err != nil {
			return nil, err
		}
		date, err := time.ParseInLocation(planner.DateLayout, d.Date, time.UTC)
		if err != nil {
			return nil, err
		}
		days = append(days, dbm.ItineraryDay{
			DayNumber:  d.DayNumber,
			Date:       date,
			Activities: blob,
		})
	}
	return days, nil
}

func awardFirstTripBadge(
	ctx context.Context,
	tripRepo repositories.TripRepository,
	badgeRepo repositories.WishlistRepository,
	userID uuid.UUID,
) {
	count, err := tripRepo.CountByUser(ctx, userID)
	if err != nil || count != 1 {
		return
	}
	badge := &dbm.TravelBadge{
		UserID:           userID,
		BadgeName:        "First Trip",
		BadgeDescription: "Planned your very first trip",
	}
	if err := badgeRepo.AwardOnce(ctx, badge); err != nil {
		log.Printf("Failed to award First Trip badge: %v", err)
	}
}
