package repository

import (
	"errors"
	"strings"

	"github.com/photo-share/api-go/models"
	"gorm.io/gorm"
)

func GetTagByName(db *gorm.DB, name string) (*models.Tag, error) {
	var tag models.Tag
	if err := db.Where("tag = ?", name).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

func CreateTag(db *gorm.DB, name string, userID uint) (*models.Tag, error) {
	tag := models.Tag{Text: name, UserID: userID}
	if err := db.Create(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// ResolveTags maps tag names to Tag rows, creating missing ones attributed
// to the acting user. Names are trimmed and deduplicated first, so a
// request repeating "sunset" ends up with a single association. A create
// that loses the race on the unique tag text falls back to fetching the
// winner's row.
func ResolveTags(db *gorm.DB, names []string, userID uint) ([]models.Tag, error) {
	var tags []models.Tag
	seen := make(map[string]bool, len(names))

	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		tag, err := GetTagByName(db, name)
		if err != nil {
			return nil, err
		}
		if tag == nil {
			tag, err = CreateTag(db, name, userID)
			if err != nil {
				// insert-or-fetch: someone else created it concurrently
				existing, ferr := GetTagByName(db, name)
				if ferr != nil {
					return nil, ferr
				}
				if existing == nil {
					return nil, err
				}
				tag = existing
			}
		}
		tags = append(tags, *tag)
	}

	return tags, nil
}
