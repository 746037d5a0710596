package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/photo-share/api-go/controllers"
)

func SetupTransformRoutes(protected *gin.RouterGroup, transformController *controllers.TransformController) {
	transform := protected.Group("/image/transform")
	{
		transform.GET("/user", transformController.ListForUser)
		transform.POST("/:post_id", transformController.Preview)
		transform.POST("/save/:post_id", transformController.Save)
		transform.GET("/qrcode/:id", transformController.QRCode)
		transform.GET("/:id", transformController.GetImage)
		transform.DELETE("/:id", transformController.DeleteImage)
		transform.GET("/all/:post_id", transformController.ListForPost)
	}
}
