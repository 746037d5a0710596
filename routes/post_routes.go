package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/photo-share/api-go/controllers"
	"github.com/photo-share/api-go/middleware"
	"github.com/redis/go-redis/v9"
)

func SetupPostRoutes(protected *gin.RouterGroup, postController *controllers.PostController, rdb *redis.Client) {
	posts := protected.Group("/posts")
	{
		createLimit := middleware.RateLimit(rdb, postCreateLimit, postCreateWindow)
		posts.POST("", createLimit, postController.CreatePost)
		posts.POST("/upload", createLimit, postController.UploadPost)

		posts.GET("/p/:post_id", postController.GetPost)
		posts.GET("/u/:user_id", postController.GetUserPosts)
		posts.PUT("/p/:post_id", postController.UpdatePost)
		posts.PATCH("/p/:post_id/mark", postController.ToggleMark)
		posts.DELETE("/p/:post_id", postController.DeletePost)
	}
}
