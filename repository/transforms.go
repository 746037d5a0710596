package repository

import (
	"errors"

	"github.com/photo-share/api-go/models"
	"gorm.io/gorm"
)

// SourceURLForPost returns the stored photo of a post for transformation.
// Owner scoped, privileged bypass; empty string when absent.
func SourceURLForPost(db *gorm.DB, postID, userID uint, role models.Role) (string, error) {
	var post models.Post
	err := db.Scopes(Owned("user_id", userID, role)).Where("id = ?", postID).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return post.PhotoURL, nil
}

// SaveTransformedImage persists a derived URL against its source post.
func SaveTransformedImage(db *gorm.DB, postID uint, url string, userID uint, role models.Role) (*models.TransformedImage, error) {
	var post models.Post
	err := db.Scopes(Owned("user_id", userID, role)).Where("id = ?", postID).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	image := models.TransformedImage{PhotoURL: url, PhotoID: post.ID}
	if err := db.Create(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func GetTransformedImage(db *gorm.DB, imageID, userID uint, role models.Role) (*models.TransformedImage, error) {
	var image models.TransformedImage
	err := db.Scopes(OwnedViaPost("transformed_images", userID, role)).
		Where("transformed_images.id = ?", imageID).First(&image).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &image, nil
}

func ListTransformedForPost(db *gorm.DB, postID uint, skip, limit int, userID uint, role models.Role) ([]models.TransformedImage, error) {
	var images []models.TransformedImage
	err := db.Scopes(OwnedViaPost("transformed_images", userID, role)).
		Where("transformed_images.photo_id = ?", postID).
		Order("transformed_images.created_at").Offset(skip).Limit(limit).Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

// ListTransformedForUser lists every derived image across the user's posts.
func ListTransformedForUser(db *gorm.DB, userID uint, skip, limit int) ([]models.TransformedImage, error) {
	var images []models.TransformedImage
	err := db.Joins("JOIN posts ON posts.id = transformed_images.photo_id").
		Where("posts.user_id = ?", userID).
		Order("transformed_images.created_at").Offset(skip).Limit(limit).Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func RemoveTransformedImage(db *gorm.DB, imageID, userID uint, role models.Role) (bool, error) {
	image, err := GetTransformedImage(db, imageID, userID, role)
	if err != nil || image == nil {
		return false, err
	}
	if err := db.Delete(&models.TransformedImage{}, image.ID).Error; err != nil {
		return false, err
	}
	return true, nil
}
