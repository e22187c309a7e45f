package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripbuddy/internal/models/request_models"
	"tripbuddy/internal/services"
	"tripbuddy/pkg/utils"
)

type WishlistController struct {
	wishlistService services.WishlistServiceInterface
}

func NewWishlistController(wishlistService services.WishlistServiceInterface) *WishlistController {
	return &WishlistController{
		wishlistService: wishlistService,
	}
}

func (wc *WishlistController) AddWishDestination(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req request_models.AddWishDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Destination is required")
		return
	}

	wish, err := wc.wishlistService.AddWishDestination(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, wish, "Wish destination added")
}

func (wc *WishlistController) ListWishDestinations(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	wishes, err := wc.wishlistService.ListWishDestinations(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, wishes, "Wish destinations fetched successfully")
}

func (wc *WishlistController) RemoveWishDestination(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	wishID, ok := parseUUIDParam(c, "wishId")
	if !ok {
		return
	}

	if err := wc.wishlistService.RemoveWishDestination(c.Request.Context(), wishID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Wish destination removed")
}

func (wc *WishlistController) ListBadges(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	badges, err := wc.wishlistService.ListBadges(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, badges, "Travel badges fetched successfully")
}
