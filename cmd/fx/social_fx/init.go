package social_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripbuddy/internal/repositories"
	"tripbuddy/internal/services"
	mem "tripbuddy/pkg/memcache"
)

var Module = fx.Provide(
	providePostRepo, provideSocialService)

func providePostRepo(db *gorm.DB) repositories.PostRepository {
	return repositories.NewPostRepository(db)
}

func provideSocialService(postRepo repositories.PostRepository, tripRepo repositories.TripRepository, feedCache mem.FeedCacheStore) services.SocialServiceInterface {
	return services.NewSocialService(postRepo, tripRepo, feedCache)
}
