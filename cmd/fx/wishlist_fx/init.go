package wishlist_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripbuddy/internal/repositories"
	"tripbuddy/internal/services"
)

var Module = fx.Provide(
	provideWishlistRepo, provideWishlistService)

func provideWishlistRepo(db *gorm.DB) repositories.WishlistRepository {
	return repositories.NewWishlistRepository(db)
}

func provideWishlistService(wishlistRepo repositories.WishlistRepository) services.WishlistServiceInterface {
	return services.NewWishlistService(wishlistRepo)
}
