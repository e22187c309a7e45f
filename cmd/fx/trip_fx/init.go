package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripbuddy/internal/repositories"
	"tripbuddy/internal/services"
)

var Module = fx.Provide(
	provideTripRepo, provideTripService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository, badgeRepo repositories.WishlistRepository) services.TripServiceInterface {
	return services.NewTripService(tripRepo, badgeRepo)
}
