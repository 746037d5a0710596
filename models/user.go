package models

import (
	"time"
)

// Role gates visibility and mutation scope across the API.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleUser      Role = "user"
)

// Privileged reports whether the role bypasses owner-scoped query predicates.
func (r Role) Privileged() bool {
	return r == RoleAdmin || r == RoleModerator
}

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"size:50;unique;not null" json:"username"`
	FirstName    string    `gorm:"size:70" json:"first_name"`
	LastName     string    `gorm:"size:70" json:"last_name"`
	Email        string    `gorm:"size:250;unique;not null" json:"email"`
	Password     string    `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialized
	RefreshToken *string   `gorm:"size:512" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	Role         Role      `gorm:"size:20;default:user" json:"role"`
	Posts        []Post    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Comments     []Comment `gorm:"foreignKey:UserID" json:"-"`
	Rates        []Rate    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
