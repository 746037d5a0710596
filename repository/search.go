package repository

import (
	"time"

	"github.com/photo-share/api-go/models"
	"gorm.io/gorm"
)

// PostSearchResult is one denormalized search row. Rate is the coalesced
// average rating (0 when unrated); Tags come alphabetically from a single
// batched prefetch. DisplayURL is filled by the route layer from the image
// service.
type PostSearchResult struct {
	ID          uint      `json:"id"`
	PhotoURL    string    `json:"photo_url"`
	DisplayURL  string    `json:"display_url" gorm:"-"`
	Description string    `json:"description"`
	UserID      uint      `json:"user_id"`
	Rate        float64   `json:"rate"`
	CreatedAt   time.Time `json:"created_at"`
	Tags        []string  `json:"tags" gorm:"-"`
}

// PostSearchOrder maps a sort key and direction to the ORDER BY expression
// for post search. Supported keys: "rate", "date" (default "date").
func PostSearchOrder(sortKey string, ascending bool) string {
	dir := "DESC"
	if ascending {
		dir = "ASC"
	}
	switch sortKey {
	case "rate":
		return "rate " + dir
	default:
		return "posts.created_at " + dir
	}
}

// UserSearchOrder maps a sort key and direction for user search.
// Supported keys: "username", "email", "name", "date" (default "date").
func UserSearchOrder(sortKey string, ascending bool) string {
	dir := "DESC"
	if ascending {
		dir = "ASC"
	}
	switch sortKey {
	case "username":
		return "username " + dir
	case "email":
		return "email " + dir
	case "name":
		return "first_name " + dir + ", last_name " + dir
	default:
		return "created_at " + dir
	}
}

// SearchPosts matches free text against post descriptions and tag text
// (case-insensitive substring), grouping by post to collapse the tag and
// rating joins into one row per post. Soft-deleted posts never match.
func SearchPosts(db *gorm.DB, text, sortKey string, ascending bool, skip, limit int) ([]PostSearchResult, error) {
	pattern := "%" + text + "%"

	var rows []PostSearchResult
	err := db.Model(&models.Post{}).
		Select("posts.id, posts.photo_url, posts.description, posts.user_id, posts.created_at, COALESCE(AVG(rates.rate), 0) AS rate").
		Joins("LEFT JOIN post_tags ON post_tags.post_id = posts.id").
		Joins("LEFT JOIN tags ON tags.id = post_tags.tag_id").
		Joins("LEFT JOIN rates ON rates.photo_id = posts.id").
		Where("posts.marked = ?", false).
		Where("posts.description ILIKE ? OR tags.tag ILIKE ?", pattern, pattern).
		Group("posts.id").
		Order(PostSearchOrder(sortKey, ascending)).
		Offset(skip).Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return rows, nil
	}

	// one batched tag prefetch for every result row
	ids := make([]uint, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}

	var pairs []struct {
		PostID uint
		Tag    string
	}
	err = db.Table("post_tags").
		Select("post_tags.post_id, tags.tag").
		Joins("JOIN tags ON tags.id = post_tags.tag_id").
		Where("post_tags.post_id IN ?", ids).
		Order("tags.tag").
		Scan(&pairs).Error
	if err != nil {
		return nil, err
	}

	byPost := make(map[uint][]string, len(rows))
	for _, p := range pairs {
		byPost[p.PostID] = append(byPost[p.PostID], p.Tag)
	}
	for i := range rows {
		rows[i].Tags = byPost[rows[i].ID]
	}

	return rows, nil
}

// SearchUsers matches free text against username, first/last name and
// email. The route gates this on admin/moderator.
func SearchUsers(db *gorm.DB, text, sortKey string, ascending bool, skip, limit int) ([]models.User, error) {
	pattern := "%" + text + "%"

	var users []models.User
	err := db.Where("username ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?",
		pattern, pattern, pattern, pattern).
		Order(UserSearchOrder(sortKey, ascending)).
		Offset(skip).Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
