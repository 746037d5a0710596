package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertRateSelfRatingReturnsAbsent(t *testing.T) {
	db, mock := newTestDB(t)

	// the eligible-post lookup excludes self-owned posts, so no row comes back
	mock.ExpectQuery(`SELECT \* FROM "posts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}))

	rate, err := UpsertRate(db, 10, 5, 3)
	require.NoError(t, err)
	assert.Nil(t, rate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertRateInsertsFirstSubmission(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT \* FROM "posts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(10, 2))
	mock.ExpectQuery(`SELECT \* FROM "rates"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "rates"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	rate, err := UpsertRate(db, 10, 3, 3)
	require.NoError(t, err)
	require.NotNil(t, rate)
	assert.Equal(t, uint(7), rate.ID)
	assert.Equal(t, 3, rate.Rate)
	assert.Equal(t, uint(10), rate.PhotoID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertRateSecondSubmissionUpdatesInPlace(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT \* FROM "posts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(10, 2))
	mock.ExpectQuery(`SELECT \* FROM "rates"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "rate", "photo_id", "user_id"}).AddRow(7, 2, 10, 3))
	mock.ExpectExec(`UPDATE "rates"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rate, err := UpsertRate(db, 10, 5, 3)
	require.NoError(t, err)
	require.NotNil(t, rate)
	assert.Equal(t, uint(7), rate.ID)
	assert.Equal(t, 5, rate.Rate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveRateScopedToOwner(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectExec(`DELETE FROM "rates"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := RemoveRate(db, 9, 3, "user")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
