package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/photo-share/api-go/repository"
	"github.com/photo-share/api-go/services/cloudinary"
	"github.com/photo-share/api-go/services/transform"
	"github.com/photo-share/api-go/utils"
	"gorm.io/gorm"
)

type TransformController struct {
	DB  *gorm.DB
	CLD *cloudinary.Client
}

func NewTransformController(db *gorm.DB, cld *cloudinary.Client) *TransformController {
	return &TransformController{DB: db, CLD: cld}
}

// Preview compiles a transformation request against a post's photo and
// returns the delivery URL without persisting anything.
func (tc *TransformController) Preview(c *gin.Context) {
	user := utils.GetUser(c)
	postID, ok := paramUint(c, "post_id")
	if !ok {
		return
	}

	var req transform.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	source, err := repository.SourceURLForPost(tc.DB, postID, user.UserID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if source == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": utils.MsgNotFound})
		return
	}

	url := tc.CLD.BuildURL(source, transform.Compile(&req))
	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}

// Save compiles a transformation and records the resulting URL against the
// source post.
func (tc *TransformController) Save(c *gin.Context) {
	user := utils.GetUser(c)
	postID, ok := paramUint(c, "post_id")
	if !ok {
		return
	}

	var req transform.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	source, err := repository.SourceURLForPost(tc.DB, postID, user.UserID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if source == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": utils.MsgNotFound})
		return
	}

	url := tc.CLD.BuildURL(source, transform.Compile(&req))
	image, err := repository.SaveTransformedImage(tc.DB, postID, url, user.UserID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save transformed image"})
		return
	}
	if image == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": utils.MsgNotFound})
		return
	}

	c.JSON(http.StatusCreated, image)
}

func (tc *TransformController) GetImage(c *gin.Context) {
	user := utils.GetUser(c)
	imageID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	image, err := repository.GetTransformedImage(tc.DB, imageID, user.UserID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if image == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": utils.MsgNotFound})
		return
	}

	c.JSON(http.StatusOK, image)
}

// QRCode renders a QR code for a saved transformed image, base64 PNG.
func (tc *TransformController) QRCode(c *gin.Context) {
	user := utils.GetUser(c)
	imageID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	image, err := repository.GetTransformedImage(tc.DB, imageID, user.UserID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if image == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": utils.MsgNotFound})
		return
	}

	encoded, err := cloudinary.QRCodeBase64(image.PhotoURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render QR code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"qr_code": encoded, "photo_url": image.PhotoURL})
}

func (tc *TransformController) ListForPost(c *gin.Context) {
	user := utils.GetUser(c)
	postID, ok := paramUint(c, "post_id")
	if !ok {
		return
	}
	skip, limit := utils.Pagination(c, 10)

	images, err := repository.ListTransformedForPost(tc.DB, postID, skip, limit, user.UserID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, images)
}

func (tc *TransformController) ListForUser(c *gin.Context) {
	user := utils.GetUser(c)
	skip, limit := utils.Pagination(c, 10)

	images, err := repository.ListTransformedForUser(tc.DB, user.UserID, skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, images)
}

func (tc *TransformController) DeleteImage(c *gin.Context) {
	user := utils.GetUser(c)
	imageID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	deleted, err := repository.RemoveTransformedImage(tc.DB, imageID, user.UserID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transformed image"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": utils.MsgNotFound})
		return
	}

	c.Status(http.StatusNoContent)
}
