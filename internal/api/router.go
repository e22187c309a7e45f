package api

import (
	"github.com/gin-gonic/gin"
	"tripbuddy/internal/api/controllers"
	"tripbuddy/pkg/middleware"
)

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	tripController *controllers.TripController,
	bookingController *controllers.BookingController,
	socialController *controllers.SocialController,
	accountController *controllers.AccountController,
	wishlistController *controllers.WishlistController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		itineraryController,
		tripController,
		bookingController,
		socialController,
		accountController,
		wishlistController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	tripController *controllers.TripController,
	bookingController *controllers.BookingController,
	socialController *controllers.SocialController,
	accountController *controllers.AccountController,
	wishlistController *controllers.WishlistController) {

	v1 := r.Group("/api/v1")

	accountsGroup := v1.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)

	profileGroup := v1.Group("/profile", middleware.JWTAuthMiddleware())
	profileGroup.GET("", accountController.GetProfile)
	profileGroup.PUT("", accountController.UpdateProfile)

	itinerariesGroup := v1.Group("/itineraries", middleware.OptionalJWTMiddleware())
	itinerariesGroup.POST("/generate", itineraryController.GenerateItinerary)

	tripsGroup := v1.Group("/trips", middleware.JWTAuthMiddleware())
	tripsGroup.GET("", tripController.ListMyTrips)
	tripsGroup.POST("", tripController.CreateTrip)
	tripsGroup.GET("/:tripId", tripController.GetTrip)
	tripsGroup.PUT("/:tripId", tripController.UpdateTrip)
	tripsGroup.DELETE("/:tripId", tripController.DeleteTrip)
	tripsGroup.GET("/:tripId/itinerary", tripController.GetItinerary)
	tripsGroup.POST("/:tripId/clone", tripController.CloneTrip)
	tripsGroup.GET("/:tripId/bookings", bookingController.ListBookingsByTrip)

	bookingsGroup := v1.Group("/bookings", middleware.JWTAuthMiddleware())
	bookingsGroup.POST("", bookingController.CreateBooking)
	bookingsGroup.DELETE("/:bookingId", bookingController.CancelBooking)

	v1.GET("/feed", middleware.OptionalJWTMiddleware(), socialController.GetFeed)

	postsGroup := v1.Group("/posts", middleware.JWTAuthMiddleware())
	postsGroup.POST("", socialController.CreatePost)
	postsGroup.POST("/:postId/like", socialController.LikePost)
	postsGroup.DELETE("/:postId/like", socialController.UnlikePost)
	postsGroup.GET("/:postId/like", socialController.CheckLiked)

	followsGroup := v1.Group("/follows", middleware.JWTAuthMiddleware())
	followsGroup.POST("/:userId", socialController.FollowUser)
	followsGroup.DELETE("/:userId", socialController.UnfollowUser)
	followsGroup.GET("/:userId", socialController.CheckFollowing)

	wishlistGroup := v1.Group("/wishlist", middleware.JWTAuthMiddleware())
	wishlistGroup.GET("", wishlistController.ListWishDestinations)
	wishlistGroup.POST("", wishlistController.AddWishDestination)
	wishlistGroup.DELETE("/:wishId", wishlistController.RemoveWishDestination)

	v1.GET("/badges", middleware.JWTAuthMiddleware(), wishlistController.ListBadges)
}
