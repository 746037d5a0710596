package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCommentsAppliesSkipAndLimit(t *testing.T) {
	db, mock := newTestDB(t)

	// args: post id filter, then the LIMIT and OFFSET values
	mock.ExpectQuery(`SELECT \* FROM "comments"`).
		WithArgs(1, 2, 3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "comment_text", "post_id", "user_id"}))

	comments, err := GetComments(db, 1, 3, 2)
	require.NoError(t, err)
	assert.Empty(t, comments)
	assert.NoError(t, mock.ExpectationsWereMet())
}
