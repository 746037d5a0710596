package repository

import (
	"errors"
	"time"

	"github.com/photo-share/api-go/models"
	"gorm.io/gorm"
)

// CreateComment attaches a comment to an existing, visible post. Returns
// nil when the post is absent or soft-deleted.
func CreateComment(db *gorm.DB, postID, userID uint, text string) (*models.Comment, error) {
	var post models.Post
	err := db.Where("id = ? AND marked = ?", postID, false).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	comment := models.Comment{CommentText: text, PostID: postID, UserID: userID}
	if err := db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func GetComments(db *gorm.DB, postID uint, skip, limit int) ([]models.Comment, error) {
	var comments []models.Comment
	err := db.Preload("User").Where("post_id = ?", postID).
		Order("created_at").Offset(skip).Limit(limit).Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func GetComment(db *gorm.DB, commentID uint) (*models.Comment, error) {
	var comment models.Comment
	if err := db.Preload("User").First(&comment, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// EditComment updates the text. Author only; a privileged role editing
// someone else's comment still gets an absent result.
func EditComment(db *gorm.DB, commentID, userID uint, text string) (*models.Comment, error) {
	var comment models.Comment
	err := db.Where("id = ? AND user_id = ?", commentID, userID).First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := db.Model(&comment).Updates(map[string]interface{}{
		"comment_text": text,
		"updated_at":   time.Now(),
	}).Error; err != nil {
		return nil, err
	}
	comment.CommentText = text
	return &comment, nil
}

// DeleteComment removes any comment by id. The route restricts this to
// admin and moderator callers.
func DeleteComment(db *gorm.DB, commentID uint) (bool, error) {
	res := db.Delete(&models.Comment{}, commentID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
