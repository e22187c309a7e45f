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

type BookingServiceInterface interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req request_models.CreateBookingRequest) (*response_models.BookingResponse, error)
	ListBookings(ctx context.Context, tripID, userID uuid.UUID) ([]response_models.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID, userID uuid.UUID) error
}

// confirmationPrefixes maps booking types to the two-letter code prefix shown
// on the confirmation screen.
var confirmationPrefixes = map[dbm.BookingType]string{
	dbm.BookingTypeFlight: "FL",
	dbm.BookingTypeHotel:  "HT",
	dbm.BookingTypeTrain:  "TR",
}

type BookingService struct {
	bookingRepo repositories.BookingRepository
	tripRepo    repositories.TripRepository
}

func NewBookingService(bookingRepo repositories.BookingRepository, tripRepo repositories.TripRepository) BookingServiceInterface {
	return &BookingService{
		bookingRepo: bookingRepo,
		tripRepo:    tripRepo,
	}
}

func (s *BookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req request_models.CreateBookingRequest) (*response_models.BookingResponse, error) {
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

	bookingType := dbm.BookingType(req.Type)
	booking := &dbm.Booking{
		TripID:           tripID,
		UserID:           userID,
		Type:             bookingType,
		Details:          req.Details,
		ConfirmationCode: utils.GenerateConfirmationCode(confirmationPrefixes[bookingType]),
		Status:           dbm.BookingStatusConfirmed,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := buildBookingResponse(booking)
	return &resp, nil
}

func (s *BookingService) ListBookings(ctx context.Context, tripID, userID uuid.UUID) ([]response_models.BookingResponse, error) {
	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil || trip.UserID != userID {
		return nil, utils.ErrTripNotFound
	}

	bookings, err := s.bookingRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, buildBookingResponse(&b))
	}
	return out, nil
}

func (s *BookingService) CancelBooking(ctx context.Context, bookingID, userID uuid.UUID) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if booking == nil || booking.UserID != userID {
		return utils.ErrBookingNotFound
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, dbm.BookingStatusCancelled); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func buildBookingResponse(b *dbm.Booking) response_models.BookingResponse {
	return response_models.BookingResponse{
		ID:               b.ID,
		TripID:           b.TripID,
		Type:             string(b.Type),
		Details:          b.Details,
		ConfirmationCode: b.ConfirmationCode,
		Status:           string(b.Status),
		CreatedAt:        b.CreatedAt,
	}
}
