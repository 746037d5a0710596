package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/photo-share/api-go/models"
	"github.com/photo-share/api-go/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rateRouter(t *testing.T, userID uint) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	rc := NewRateController(db)

	r := gin.New()
	r.POST("/rate/:post_id", asUser(userID, models.RoleUser), rc.SetRate)
	return r, mock
}

func TestSetRateCreatesRating(t *testing.T) {
	r, mock := rateRouter(t, 3)

	mock.ExpectQuery(`SELECT \* FROM "posts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(10, 2))
	mock.ExpectQuery(`SELECT \* FROM "rates"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "rates"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	req := httptest.NewRequest(http.MethodPost, "/rate/10", strings.NewReader(`{"rate":3}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Rate    int  `json:"rate"`
		PhotoID uint `json:"photo_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Rate)
	assert.Equal(t, uint(10), body.PhotoID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetRateOwnPostRejected(t *testing.T) {
	r, mock := rateRouter(t, 2)

	// caller owns post 10, so the eligible-post lookup finds nothing
	mock.ExpectQuery(`SELECT \* FROM "posts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}))

	req := httptest.NewRequest(http.MethodPost, "/rate/10", strings.NewReader(`{"rate":4}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, utils.MsgNotFound, body["error"])
}

func TestSetRateOutOfRangeRejected(t *testing.T) {
	r, _ := rateRouter(t, 3)

	req := httptest.NewRequest(http.MethodPost, "/rate/10", strings.NewReader(`{"rate":6}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
