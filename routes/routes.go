package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/photo-share/api-go/config"
	"github.com/photo-share/api-go/controllers"
	"github.com/photo-share/api-go/middleware"
	"github.com/photo-share/api-go/services/cloudinary"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	postCreateLimit  = 10
	postCreateWindow = time.Minute
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client) {
	cld := cloudinary.NewClient(config.GetCloudinaryConfig())

	// Initialize controllers
	authController := controllers.NewAuthController(db)
	postController := controllers.NewPostController(db)
	commentController := controllers.NewCommentController(db)
	rateController := controllers.NewRateController(db)
	searchController := controllers.NewSearchController(db, cld)
	transformController := controllers.NewTransformController(db, cld)
	userController := controllers.NewUserController(db)
	healthController := controllers.NewHealthController(db)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/auth/signup", authController.Signup)
		public.POST("/auth/login", authController.Login)
		public.GET("/auth/refresh_token", authController.RefreshToken)
		public.GET("/healthchecker", healthController.Healthcheck)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/auth/logout", authController.Logout)

		SetupPostRoutes(protected, postController, rdb)
		SetupCommentRoutes(protected, commentController)
		SetupRateRoutes(protected, rateController)
		SetupSearchRoutes(protected, searchController)
		SetupTransformRoutes(protected, transformController)
		SetupUserRoutes(protected, userController)
	}
}
