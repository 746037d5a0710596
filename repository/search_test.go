package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostSearchOrder(t *testing.T) {
	assert.Equal(t, "rate DESC", PostSearchOrder("rate", false))
	assert.Equal(t, "rate ASC", PostSearchOrder("rate", true))
	assert.Equal(t, "posts.created_at DESC", PostSearchOrder("date", false))
	assert.Equal(t, "posts.created_at DESC", PostSearchOrder("", false))
}

func TestUserSearchOrder(t *testing.T) {
	assert.Equal(t, "username ASC", UserSearchOrder("username", true))
	assert.Equal(t, "email DESC", UserSearchOrder("email", false))
	assert.Equal(t, "first_name ASC, last_name ASC", UserSearchOrder("name", true))
	assert.Equal(t, "created_at DESC", UserSearchOrder("anything", false))
}

func TestSearchPostsPrefetchesTagsInOneQuery(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`FROM "posts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "photo_url", "description", "user_id", "rate"}).
			AddRow(1, "photos/a.jpg", "sunset at the beach", 4, 4.5).
			AddRow(2, "photos/b.jpg", "city sunset", 5, 0))
	mock.ExpectQuery(`FROM "post_tags"`).
		WillReturnRows(sqlmock.NewRows([]string{"post_id", "tag"}).
			AddRow(1, "beach").
			AddRow(1, "sunset").
			AddRow(2, "sunset"))

	rows, err := SearchPosts(db, "sunset", "rate", false, 0, 20)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"beach", "sunset"}, rows[0].Tags)
	assert.Equal(t, []string{"sunset"}, rows[1].Tags)
	assert.InDelta(t, 4.5, rows[0].Rate, 0.0001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchPostsEmptyResultSkipsPrefetch(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`FROM "posts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	rows, err := SearchPosts(db, "nothing", "date", true, 0, 20)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
