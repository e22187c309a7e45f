package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripbuddy/internal/models/request_models"
	"tripbuddy/internal/models/response_models"
	"tripbuddy/internal/planner"
	"tripbuddy/internal/services"
	"tripbuddy/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GenerateItinerary godoc
// @Summary Generate a trip itinerary
// @Description Build a day-by-day itinerary from destination, dates, budget and interest tags. Authenticated callers can set save=true to persist the result as a new trip.
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Trip parameters"
// @Success 200 {object} utils.APIResponse{data=response_models.GenerateItineraryResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /itineraries/generate [post]
func (ic *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.Destination == "" || req.StartDate == "" || req.EndDate == "" || req.Budget == nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing required parameters")
		return
	}

	plannerReq := planner.TripRequest{
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      *req.Budget,
		Interests:   req.Tags,
	}

	if userID, ok := currentUserID(c); ok && req.Save {
		resp, err := ic.itineraryService.GenerateAndSave(c.Request.Context(), userID, plannerReq, req.Title, req.Source)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}

		msg := "Itinerary generated successfully"
		if !resp.Saved {
			// Generation succeeded; only persistence failed. The caller
			// still gets the full itinerary.
			msg = "Itinerary generated but could not be saved"
		}
		utils.RespondSuccess(c, resp, msg)
		return
	}

	itinerary, err := ic.itineraryService.Generate(plannerReq)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.GenerateItineraryResponse{Itinerary: itinerary},
		"Itinerary generated successfully")
}
