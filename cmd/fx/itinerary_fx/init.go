package itinerary_fx

import (
	"go.uber.org/fx"
	"tripbuddy/internal/repositories"
	"tripbuddy/internal/services"
)

var Module = fx.Provide(provideItineraryService)

func provideItineraryService(tripRepo repositories.TripRepository, badgeRepo repositories.WishlistRepository) services.ItineraryServiceInterface {
	return services.NewItineraryService(tripRepo, badgeRepo)
}
