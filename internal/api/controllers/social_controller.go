package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripbuddy/internal/models/request_models"
	"tripbuddy/internal/services"
	"tripbuddy/pkg/utils"
)

type SocialController struct {
	socialService services.SocialServiceInterface
}

func NewSocialController(socialService services.SocialServiceInterface) *SocialController {
	return &SocialController{
		socialService: socialService,
	}
}

// GetFeed returns the public trip feed, newest posts first. Anonymous access
// is allowed; the feed only ever shows public trips.
func (sc *SocialController) GetFeed(c *gin.Context) {
	page, pageSize, ok := parsePagination(c, 10)
	if !ok {
		return
	}

	posts, err := sc.socialService.GetFeed(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, posts, "Feed fetched successfully")
}

func (sc *SocialController) CreatePost(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req request_models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "TripID is required")
		return
	}

	post, err := sc.socialService.CreatePost(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "Post created successfully")
}

func (sc *SocialController) LikePost(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	postID, ok := parseUUIDParam(c, "postId")
	if !ok {
		return
	}

	if err := sc.socialService.LikePost(c.Request.Context(), postID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Post liked")
}

func (sc *SocialController) UnlikePost(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	postID, ok := parseUUIDParam(c, "postId")
	if !ok {
		return
	}

	if err := sc.socialService.UnlikePost(c.Request.Context(), postID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Post unliked")
}

func (sc *SocialController) CheckLiked(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	postID, ok := parseUUIDParam(c, "postId")
	if !ok {
		return
	}

	liked, err := sc.socialService.HasLiked(c.Request.Context(), postID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"liked": liked}, "Like status fetched")
}

func (sc *SocialController) FollowUser(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	followingID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}

	if err := sc.socialService.Follow(c.Request.Context(), userID, followingID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "User followed")
}

func (sc *SocialController) UnfollowUser(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	followingID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}

	if err := sc.socialService.Unfollow(c.Request.Context(), userID, followingID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "User unfollowed")
}

func (sc *SocialController) CheckFollowing(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	followingID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}

	following, err := sc.socialService.IsFollowing(c.Request.Context(), userID, followingID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"following": following}, "Follow status fetched")
}
