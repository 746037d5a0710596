package models

import (
	"time"
)

// Tag text is globally unique: two posts tagged "sunset" share one row.
type Tag struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Text      string    `gorm:"column:tag;size:25;uniqueIndex;not null" json:"tag"`
	UserID    uint      `gorm:"not null" json:"user_id"` // user the tag was first created for
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
