package models

import (
	"time"
)

// Rate is a 1-5 score a user assigns to another user's post. The unique
// index on (photo_id, user_id) backs the upsert: a second submission
// updates the existing row instead of inserting.
type Rate struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Rate      int       `gorm:"default:0" json:"rate"`
	PhotoID   uint      `gorm:"column:photo_id;not null;uniqueIndex:idx_rates_photo_user" json:"photo_id"`
	Post      Post      `gorm:"foreignKey:PhotoID;constraint:OnDelete:CASCADE" json:"-"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_rates_photo_user" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
