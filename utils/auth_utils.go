package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/photo-share/api-go/models"
)

type UserClaims struct {
	UserID uint        `json:"user_id"`
	Role   models.Role `json:"role"`
}

type contextKey string

const UserContextKey contextKey = "user"

func GetUser(c *gin.Context) *UserClaims {
	user, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if userClaims, ok := user.(*UserClaims); ok {
		return userClaims
	}
	return nil
}
