package booking_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripbuddy/internal/repositories"
	"tripbuddy/internal/services"
)

var Module = fx.Provide(
	provideBookingRepo, provideBookingService)

func provideBookingRepo(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideBookingService(bookingRepo repositories.BookingRepository, tripRepo repositories.TripRepository) services.BookingServiceInterface {
	return services.NewBookingService(bookingRepo, tripRepo)
}
