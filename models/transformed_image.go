package models

import (
	"time"
)

// TransformedImage is a derived Cloudinary URL persisted against its
// source post. A post can accumulate any number of them.
type TransformedImage struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PhotoURL  string    `gorm:"not null" json:"photo_url"`
	PhotoID   uint      `gorm:"column:photo_id;not null;index" json:"photo_id"`
	Post      Post      `gorm:"foreignKey:PhotoID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
