package repository

import (
	"errors"

	"github.com/photo-share/api-go/models"
	"gorm.io/gorm"
)

func GetUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func GetUserByID(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func CreateUser(db *gorm.DB, user *models.User) error {
	return db.Create(user).Error
}

// UpdateRefreshToken rotates (or clears, with nil) the stored refresh token.
func UpdateRefreshToken(db *gorm.DB, user *models.User, token *string) error {
	user.RefreshToken = token
	return db.Model(user).Update("refresh_token", token).Error
}

// AllUsers lists every account. The route gates this on admin/moderator.
func AllUsers(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	if err := db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUserRole sets a user's role. Admin-only at the route layer.
func UpdateUserRole(db *gorm.DB, userID uint, role models.Role) (*models.User, error) {
	user, err := GetUserByID(db, userID)
	if err != nil || user == nil {
		return nil, err
	}
	if err := db.Model(user).Update("role", role).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// SetUserActive flips the active flag (ban/unban). Admin-only at the route.
func SetUserActive(db *gorm.DB, userID uint, active bool) (*models.User, error) {
	user, err := GetUserByID(db, userID)
	if err != nil || user == nil {
		return nil, err
	}
	if err := db.Model(user).Update("is_active", active).Error; err != nil {
		return nil, err
	}
	return user, nil
}
