package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripbuddy/cmd/fx/account_fx"
	"tripbuddy/cmd/fx/booking_fx"
	"tripbuddy/cmd/fx/controllers_fx"
	"tripbuddy/cmd/fx/db_fx"
	"tripbuddy/cmd/fx/itinerary_fx"
	"tripbuddy/cmd/fx/memcache_fx"
	"tripbuddy/cmd/fx/social_fx"
	"tripbuddy/cmd/fx/trip_fx"
	"tripbuddy/cmd/fx/wishlist_fx"
	"tripbuddy/internal/api"
	"tripbuddy/internal/infra"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		trip_fx.Module,
		itinerary_fx.Module,
		booking_fx.Module,
		social_fx.Module,
		wishlist_fx.Module,
		controllers_fx.Module,

		fx.Provide(api.ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}
