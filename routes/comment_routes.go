package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/photo-share/api-go/controllers"
	"github.com/photo-share/api-go/middleware"
	"github.com/photo-share/api-go/models"
)

func SetupCommentRoutes(protected *gin.RouterGroup, commentController *controllers.CommentController) {
	posts := protected.Group("/posts")
	{
		posts.POST("/:post_id/comments", commentController.CreateComment)
		posts.GET("/:post_id/comments", commentController.GetComments)
	}

	comments := protected.Group("/comments")
	{
		comments.GET("/:comment_id", commentController.GetComment)
		comments.PATCH("/:comment_id", commentController.EditComment)
		comments.DELETE("/:comment_id",
			middleware.RequireRoles(models.RoleAdmin, models.RoleModerator),
			commentController.DeleteComment)
	}
}
