package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/photo-share/api-go/models"
	"github.com/photo-share/api-go/utils"
	"github.com/stretchr/testify/assert"
)

func roleTestRouter(role models.Role, allowed ...models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(string(utils.UserContextKey), &utils.UserClaims{UserID: 1, Role: role})
	})
	r.DELETE("/guarded", RequireRoles(allowed...), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestRequireRolesForbidsPlainUser(t *testing.T) {
	r := roleTestRouter(models.RoleUser, models.RoleAdmin, models.RoleModerator)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/guarded", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), utils.MsgForbidden)
}

func TestRequireRolesAllowsListedRoles(t *testing.T) {
	for _, role := range []models.Role{models.RoleAdmin, models.RoleModerator} {
		r := roleTestRouter(role, models.RoleAdmin, models.RoleModerator)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/guarded", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code, "role %s should pass", role)
	}
}

func TestRequireRolesUnauthorizedWithoutClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", RequireRoles(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
