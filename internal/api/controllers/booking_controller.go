package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripbuddy/internal/models/request_models"
	"tripbuddy/internal/services"
	"tripbuddy/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

func (bc *BookingController) CreateBooking(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "TripID and a valid booking type are required")
		return
	}

	booking, err := bc.bookingService.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, booking, "Booking confirmed")
}

func (bc *BookingController) ListBookingsByTrip(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	tripID, ok := parseUUIDParam(c, "tripId")
	if !ok {
		return
	}

	bookings, err := bc.bookingService.ListBookings(c.Request.Context(), tripID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bookings, "Bookings fetched successfully")
}

func (bc *BookingController) CancelBooking(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	bookingID, ok := parseUUIDParam(c, "bookingId")
	if !ok {
		return
	}

	if err := bc.bookingService.CancelBooking(c.Request.Context(), bookingID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Booking cancelled")
}
