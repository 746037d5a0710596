// Package repository implements the authorization-aware data access layer.
// Every read and write takes the acting user's id and role; absence of a
// matching row (including rows filtered out by ownership) is reported as a
// nil result, never as an error, so routes can map it to a 404 without
// leaking whether the row exists.
package repository

import (
	"github.com/photo-share/api-go/models"
	"gorm.io/gorm"
)

// Owned is the single ownership predicate used across the layer: admin and
// moderator callers see every row, anyone else only rows whose ownerColumn
// matches their id.
func Owned(ownerColumn string, userID uint, role models.Role) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if role.Privileged() {
			return db
		}
		return db.Where(ownerColumn+" = ?", userID)
	}
}

// OwnedViaPost scopes rows of a child table to those whose parent post
// belongs to the acting user, unless the role is privileged.
func OwnedViaPost(table string, userID uint, role models.Role) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if role.Privileged() {
			return db
		}
		return db.Joins("JOIN posts ON posts.id = "+table+".photo_id").
			Where("posts.user_id = ?", userID)
	}
}
