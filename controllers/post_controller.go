package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/photo-share/api-go/config"
	"github.com/photo-share/api-go/metrics"
	"github.com/photo-share/api-go/models"
	"github.com/photo-share/api-go/repository"
	"github.com/photo-share/api-go/utils"
	"gorm.io/gorm"
)

const maxTagsPerPost = 5

type PostController struct {
	DB       *gorm.DB
	R2Client *s3.Client
	R2Config *config.R2Config
}

type CreatePostRequest struct {
	PhotoURL    string   `json:"photo_url" binding:"required"`
	Description string   `json:"description"`
	Tags        []string `json:"tags" binding:"omitempty,max=5,dive,min=1,max=25"`
}

type UpdatePostRequest struct {
	Description string   `json:"description"`
	Tags        []string `json:"tags" binding:"omitempty,max=5,dive,min=1,max=25"`
}

func NewPostController(db *gorm.DB) *PostController {
	r2Config := config.GetR2Config()
	return &PostController{
		DB:       db,
		R2Client: config.NewR2Client(r2Config),
		R2Config: r2Config,
	}
}

func (pc *PostController) CreatePost(c *gin.Context) {
	user := utils.GetUser(c)
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tags, err := repository.ResolveTags(pc.DB, req.Tags, user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve tags"})
		return
	}

	post, err := repository.CreatePost(pc.DB, req.PhotoURL, req.Description, tags, user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	metrics.PostsCreatedTotal.WithLabelValues("url").Inc()
	c.JSON(http.StatusCreated, post)
}

// UploadPost stores the raw photo in the bucket first and only then creates
// the post row referencing it.
func (pc *PostController) UploadPost(c *gin.Context) {
	user := utils.GetUser(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Photo file is required"})
		return
	}

	description := c.PostForm("description")
	tagNames := c.PostFormArray("tags")
	if len(tagNames) > maxTagsPerPost {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("At most %d tags per post", maxTagsPerPost)})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read photo file"})
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	key := fmt.Sprintf("photos/%d/%s%s", user.UserID, uuid.New().String(), ext)

	_, err = pc.R2Client.PutObject(c.Request.Context(), &s3.PutObjectInput{
		Bucket:        aws.String(pc.R2Config.BucketName),
		Key:           aws.String(key),
		Body:          file,
		ContentType:   aws.String(fileHeader.Header.Get("Content-Type")),
		ContentLength: aws.Int64(fileHeader.Size),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store photo"})
		return
	}

	tags, err := repository.ResolveTags(pc.DB, tagNames, user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve tags"})
		return
	}

	photoURL := fmt.Sprintf("%s/%s", pc.R2Config.PublicURL, key)
	post, err := repository.CreatePost(pc.DB, photoURL, description, tags, user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	metrics.PostsCreatedTotal.WithLabelValues("upload").Inc()
	c.JSON(http.StatusCreated, post)
}

func (pc *PostController) GetPost(c *gin.Context) {
	user := utils.GetUser(c)
	postID, ok := paramUint(c, "post_id")
	if !ok {
		return
	}

	post, err := repository.GetPost(pc.DB, postID, user.UserID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": utils.MsgNotFound})
		return
	}

	c.JSON(http.StatusOK, post)
}

func (pc *PostController) GetUserPosts(c *gin.Context) {
	user := utils.GetUser(c)
	targetID, ok := paramUint(c, "user_id")
	if !ok {
		return
	}

	posts, err := repository.GetUserPosts(pc.DB, targetID, user.UserID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (pc *PostController) UpdatePost(c *gin.Context) {
	user := utils.GetUser(c)
	postID, ok := paramUint(c, "post_id")
	if !ok {
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var tags []models.Tag
	if req.Tags != nil {
		var err error
		tags, err = repository.ResolveTags(pc.DB, req.Tags, user.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve tags"})
			return
		}
		if tags == nil {
			// an explicit empty list clears the existing associations;
			// an omitted field leaves them alone
			tags = []models.Tag{}
		}
	}

	post, err := repository.UpdatePost(pc.DB, postID, user.UserID, req.Description, tags)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": utils.MsgNotFound})
		return
	}

	c.JSON(http.StatusOK, post)
}

// ToggleMark flips the soft-delete flag of a post.
func (pc *PostController) ToggleMark(c *gin.Context) {
	user := utils.GetUser(c)
	postID, ok := paramUint(c, "post_id")
	if !ok {
		return
	}

	post, err := repository.ToggleMark(pc.DB, postID, user.UserID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": utils.MsgNotFound})
		return
	}

	c.JSON(http.StatusOK, post)
}

func (pc *PostController) DeletePost(c *gin.Context) {
	user := utils.GetUser(c)
	postID, ok := paramUint(c, "post_id")
	if !ok {
		return
	}

	deleted, err := repository.DeletePost(pc.DB, postID, user.UserID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": utils.MsgNotFound})
		return
	}

	c.Status(http.StatusNoContent)
}
