package controllers_fx

import (
	"go.uber.org/fx"
	"tripbuddy/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewBookingController),
	fx.Provide(controllers.NewSocialController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewWishlistController))
