package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/photo-share/api-go/controllers"
	"github.com/photo-share/api-go/middleware"
	"github.com/photo-share/api-go/models"
)

func SetupUserRoutes(protected *gin.RouterGroup, userController *controllers.UserController) {
	users := protected.Group("/users")
	{
		users.GET("/all",
			middleware.RequireRoles(models.RoleAdmin, models.RoleModerator),
			userController.AllUsers)
		users.PATCH("/:user_id/role",
			middleware.RequireRoles(models.RoleAdmin),
			userController.UpdateRole)
		users.PATCH("/:user_id/active",
			middleware.RequireRoles(models.RoleAdmin),
			userController.SetActive)
	}
}
