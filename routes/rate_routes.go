package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/photo-share/api-go/controllers"
	"github.com/photo-share/api-go/middleware"
	"github.com/photo-share/api-go/models"
)

func SetupRateRoutes(protected *gin.RouterGroup, rateController *controllers.RateController) {
	rate := protected.Group("/rate")
	{
		rate.POST("/:post_id", rateController.SetRate)
		rate.DELETE("/:rate_id", rateController.RemoveRate)
		rate.GET("/:post_id", rateController.RatesForPost)
		rate.GET("", rateController.MyRates)
		rate.GET("/user/:user_id",
			middleware.RequireRoles(models.RoleAdmin, models.RoleModerator),
			rateController.RatesFromUser)
	}
}
