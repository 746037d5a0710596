package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/photo-share/api-go/models"
	"github.com/photo-share/api-go/repository"
	"github.com/photo-share/api-go/utils"
	"gorm.io/gorm"
)

type CommentController struct {
	DB *gorm.DB
}

type CommentRequest struct {
	CommentText string `json:"comment_text" binding:"required,min=1,max=500"`
}

// CommentResponse carries the author's display name alongside the comment.
type CommentResponse struct {
	ID          uint   `json:"id"`
	CommentText string `json:"comment_text"`
	PostID      uint   `json:"post_id"`
	UserID      uint   `json:"user_id"`
	Username    string `json:"username"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db}
}

func toCommentResponse(c *models.Comment) CommentResponse {
	return CommentResponse{
		ID:          c.ID,
		CommentText: c.CommentText,
		PostID:      c.PostID,
		UserID:      c.UserID,
		Username:    c.User.Username,
		CreatedAt:   c.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   c.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (cc *CommentController) CreateComment(c *gin.Context) {
	user := utils.GetUser(c)
	postID, ok := paramUint(c, "post_id")
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := repository.CreateComment(cc.DB, postID, user.UserID, req.CommentText)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}
	if comment == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": utils.MsgNotFound})
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (cc *CommentController) GetComments(c *gin.Context) {
	postID, ok := paramUint(c, "post_id")
	if !ok {
		return
	}
	skip, limit := utils.Pagination(c, 10)

	comments, err := repository.GetComments(cc.DB, postID, skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, toCommentResponse(&comments[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (cc *CommentController) GetComment(c *gin.Context) {
	commentID, ok := paramUint(c, "comment_id")
	if !ok {
		return
	}

	comment, err := repository.GetComment(cc.DB, commentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if comment == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": utils.MsgNotFound})
		return
	}

	c.JSON(http.StatusOK, toCommentResponse(comment))
}

// EditComment lets the author revise their own comment. Anyone else,
// privileged or not, sees 404.
func (cc *CommentController) EditComment(c *gin.Context) {
	user := utils.GetUser(c)
	commentID, ok := paramUint(c, "comment_id")
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := repository.EditComment(cc.DB, commentID, user.UserID, req.CommentText)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update comment"})
		return
	}
	if comment == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": utils.MsgNotFound})
		return
	}

	c.JSON(http.StatusOK, comment)
}

func (cc *CommentController) DeleteComment(c *gin.Context) {
	commentID, ok := paramUint(c, "comment_id")
	if !ok {
		return
	}

	deleted, err := repository.DeleteComment(cc.DB, commentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": utils.MsgNotFound})
		return
	}

	c.Status(http.StatusNoContent)
}
