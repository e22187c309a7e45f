package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripbuddy/internal/models/request_models"
	"tripbuddy/internal/services"
	"tripbuddy/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// ListMyTrips godoc
// @Summary List the authenticated user's trips
// @Description Fetch a paginated list of trips, optionally filtered by status
// @Tags Trips
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Param status query string false "Trip status filter"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [get]
func (tc *TripController) ListMyTrips(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	page, pageSize, ok := parsePagination(c, 10)
	if !ok {
		return
	}

	trips, err := tc.tripService.ListTrips(c.Request.Context(), userID, page, pageSize, c.Query("status"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

func (tc *TripController) GetTrip(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	tripID, ok := parseUUIDParam(c, "tripId")
	if !ok {
		return
	}

	trip, err := tc.tripService.GetTrip(c.Request.Context(), tripID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

func (tc *TripController) CreateTrip(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := tc.tripService.CreateTrip(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip created successfully")
}

func (tc *TripController) UpdateTrip(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	tripID, ok := parseUUIDParam(c, "tripId")
	if !ok {
		return
	}

	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := tc.tripService.UpdateTrip(c.Request.Context(), tripID, userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip updated successfully")
}

func (tc *TripController) DeleteTrip(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	tripID, ok := parseUUIDParam(c, "tripId")
	if !ok {
		return
	}

	if err := tc.tripService.DeleteTrip(c.Request.Context(), tripID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}

func (tc *TripController) GetItinerary(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	tripID, ok := parseUUIDParam(c, "tripId")
	if !ok {
		return
	}

	days, err := tc.tripService.GetItinerary(c.Request.Context(), tripID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, days, "Itinerary fetched successfully")
}

// CloneTrip godoc
// @Summary Clone a trip
// @Description Copy a public trip (or one of your own) with all its itinerary days into a new private trip you own
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/clone [post]
func (tc *TripController) CloneTrip(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	tripID, ok := parseUUIDParam(c, "tripId")
	if !ok {
		return
	}

	newID, err := tc.tripService.CloneTrip(c.Request.Context(), tripID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"trip_id": newID}, "Trip cloned successfully")
}
