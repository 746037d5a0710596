package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/photo-share/api-go/controllers"
	"github.com/photo-share/api-go/middleware"
	"github.com/photo-share/api-go/models"
)

func SetupSearchRoutes(protected *gin.RouterGroup, searchController *controllers.SearchController) {
	search := protected.Group("/search")
	{
		search.POST("/posts", searchController.SearchPosts)
		search.POST("/users",
			middleware.RequireRoles(models.RoleAdmin, models.RoleModerator),
			searchController.SearchUsers)
	}
}
