package repository

import (
	"errors"
	"time"

	"github.com/photo-share/api-go/models"
	"gorm.io/gorm"
)

// CreatePost stores a post and its resolved tag associations.
func CreatePost(db *gorm.DB, photoURL, description string, tags []models.Tag, userID uint) (*models.Post, error) {
	post := models.Post{
		PhotoURL:    photoURL,
		Description: description,
		UserID:      userID,
		Tags:        tags,
	}
	if err := db.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPost returns a post with its tags. Soft-deleted posts stay visible to
// their owner and to privileged roles only.
func GetPost(db *gorm.DB, postID, userID uint, role models.Role) (*models.Post, error) {
	var post models.Post
	q := db.Preload("Tags").Where("id = ?", postID)
	if !role.Privileged() {
		q = q.Where("marked = ? OR user_id = ?", false, userID)
	}
	if err := q.First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func GetUserPosts(db *gorm.DB, targetUserID, viewerID uint, role models.Role) ([]models.Post, error) {
	var posts []models.Post
	q := db.Preload("Tags").Where("user_id = ?", targetUserID)
	if !role.Privileged() && targetUserID != viewerID {
		q = q.Where("marked = ?", false)
	}
	if err := q.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdatePost edits description and tags. Owner only, regardless of role.
func UpdatePost(db *gorm.DB, postID, userID uint, description string, tags []models.Tag) (*models.Post, error) {
	var post models.Post
	if err := db.Where("id = ? AND user_id = ?", postID, userID).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if description != "" {
		updates["description"] = description
	}
	if err := db.Model(&post).Updates(updates).Error; err != nil {
		return nil, err
	}
	if tags != nil {
		if err := db.Model(&post).Association("Tags").Replace(tags); err != nil {
			return nil, err
		}
	}
	post.Tags = tags
	return &post, nil
}

// ToggleMark flips the soft-delete flag. Owner scoped, privileged bypass.
func ToggleMark(db *gorm.DB, postID, userID uint, role models.Role) (*models.Post, error) {
	var post models.Post
	err := db.Scopes(Owned("user_id", userID, role)).Where("id = ?", postID).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := db.Model(&post).Updates(map[string]interface{}{
		"marked":     !post.Marked,
		"updated_at": time.Now(),
	}).Error; err != nil {
		return nil, err
	}
	post.Marked = !post.Marked
	return &post, nil
}

// DeletePost removes a post permanently. Owner scoped, privileged bypass;
// dependents go with it via FK cascade.
func DeletePost(db *gorm.DB, postID, userID uint, role models.Role) (bool, error) {
	res := db.Scopes(Owned("user_id", userID, role)).
		Where("id = ?", postID).Delete(&models.Post{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
