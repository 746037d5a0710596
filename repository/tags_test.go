package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTagsDeduplicatesAndCreatesMissing(t *testing.T) {
	db, mock := newTestDB(t)

	// "sunset" submitted twice resolves to one lookup; existing row reused
	mock.ExpectQuery(`SELECT \* FROM "tags"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tag", "user_id"}).AddRow(1, "sunset", 4))
	// "beach" absent, created attributed to the acting user
	mock.ExpectQuery(`SELECT \* FROM "tags"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "tags"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

	tags, err := ResolveTags(db, []string{"sunset", "sunset", "beach"}, 9)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "sunset", tags[0].Text)
	assert.Equal(t, uint(1), tags[0].ID)
	assert.Equal(t, "beach", tags[1].Text)
	assert.Equal(t, uint(9), tags[1].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveTagsSkipsBlankNames(t *testing.T) {
	db, mock := newTestDB(t)

	tags, err := ResolveTags(db, []string{"  ", ""}, 9)
	require.NoError(t, err)
	assert.Empty(t, tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}
