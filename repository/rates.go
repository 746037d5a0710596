package repository

import (
	"errors"
	"time"

	"github.com/photo-share/api-go/models"
	"gorm.io/gorm"
)

// UpsertRate records the acting user's score for a post. The eligible-post
// lookup excludes posts the user owns, so self-rating surfaces as absence
// even though the post exists. A repeated submission updates the existing
// row in place instead of inserting a second one.
func UpsertRate(db *gorm.DB, postID uint, score int, userID uint) (*models.Rate, error) {
	var post models.Post
	err := db.Where("id = ? AND user_id <> ?", postID, userID).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var rate models.Rate
	err = db.Where("photo_id = ? AND user_id = ?", postID, userID).First(&rate).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		rate = models.Rate{PhotoID: postID, UserID: userID, Rate: score}
		if cerr := db.Create(&rate).Error; cerr != nil {
			// lost the (photo,user) unique race: update the winner's row
			if ferr := db.Where("photo_id = ? AND user_id = ?", postID, userID).First(&rate).Error; ferr != nil {
				return nil, cerr
			}
		} else {
			return &rate, nil
		}
	}

	if err := db.Model(&rate).Updates(map[string]interface{}{
		"rate":       score,
		"updated_at": time.Now(),
	}).Error; err != nil {
		return nil, err
	}
	rate.Rate = score
	return &rate, nil
}

// RemoveRate deletes a rating. Owner scoped, privileged bypass.
func RemoveRate(db *gorm.DB, rateID, userID uint, role models.Role) (bool, error) {
	res := db.Scopes(Owned("user_id", userID, role)).
		Where("id = ?", rateID).Delete(&models.Rate{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// RatesForPost lists ratings on a post. Unprivileged callers only see
// ratings of posts they own.
func RatesForPost(db *gorm.DB, postID, userID uint, role models.Role) ([]models.Rate, error) {
	var rates []models.Rate
	err := db.Scopes(OwnedViaPost("rates", userID, role)).
		Where("rates.photo_id = ?", postID).Find(&rates).Error
	if err != nil {
		return nil, err
	}
	return rates, nil
}

// RatesForUser lists the ratings the acting user has submitted; privileged
// callers get every rating.
func RatesForUser(db *gorm.DB, userID uint, role models.Role) ([]models.Rate, error) {
	var rates []models.Rate
	q := db.Order("created_at DESC")
	if !role.Privileged() {
		q = q.Where("user_id = ?", userID)
	}
	if err := q.Find(&rates).Error; err != nil {
		return nil, err
	}
	return rates, nil
}

// RatesFromUser lists ratings submitted by an arbitrary user. The route
// gates this on admin/moderator.
func RatesFromUser(db *gorm.DB, targetUserID uint) ([]models.Rate, error) {
	var rates []models.Rate
	if err := db.Where("user_id = ?", targetUserID).Order("created_at DESC").Find(&rates).Error; err != nil {
		return nil, err
	}
	return rates, nil
}
