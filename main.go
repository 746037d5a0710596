package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/photo-share/api-go/config"
	"github.com/photo-share/api-go/logger"
	"github.com/photo-share/api-go/middleware"
	"github.com/photo-share/api-go/routes"
)

func main() {
	envErr := godotenv.Load()

	log := logger.Init(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_PRETTY") == "true")
	if envErr != nil {
		// a missing .env is fine in containerized deploys
		log.Debug().Msg("no .env file loaded")
	}

	// Initialize database
	db := config.InitDB()

	// Redis backs the rate limiter; nil disables it
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn().Msg("redis unavailable, rate limiting disabled")
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())

	// Initialize routes
	routes.SetupRoutes(r, db, rdb)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info().Str("port", port).Msg("starting server")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
