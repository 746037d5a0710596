package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/photo-share/api-go/models"
	"github.com/photo-share/api-go/repository"
	"github.com/photo-share/api-go/utils"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

func (uc *UserController) AllUsers(c *gin.Context) {
	users, err := repository.AllUsers(uc.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (uc *UserController) UpdateRole(c *gin.Context) {
	targetID, ok := paramUint(c, "user_id")
	if !ok {
		return
	}

	var input struct {
		Role models.Role `json:"role" binding:"required,oneof=admin moderator user"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := repository.UpdateUserRole(uc.DB, targetID, input.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": utils.MsgNotFound})
		return
	}

	c.JSON(http.StatusOK, user)
}

// SetActive bans or reinstates an account.
func (uc *UserController) SetActive(c *gin.Context) {
	targetID, ok := paramUint(c, "user_id")
	if !ok {
		return
	}

	var input struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := repository.SetUserActive(uc.DB, targetID, *input.IsActive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": utils.MsgNotFound})
		return
	}

	c.JSON(http.StatusOK, user)
}
