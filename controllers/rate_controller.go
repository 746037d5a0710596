package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/photo-share/api-go/repository"
	"github.com/photo-share/api-go/utils"
	"gorm.io/gorm"
)

type RateController struct {
	DB *gorm.DB
}

type RateRequest struct {
	Rate int `json:"rate" binding:"required,gte=1,lte=5"`
}

func NewRateController(db *gorm.DB) *RateController {
	return &RateController{DB: db}
}

// SetRate creates or replaces the caller's rating on a post. Rating your
// own post answers the same as rating a missing one.
func (rc *RateController) SetRate(c *gin.Context) {
	user := utils.GetUser(c)
	postID, ok := paramUint(c, "post_id")
	if !ok {
		return
	}

	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rate, err := repository.UpsertRate(rc.DB, postID, req.Rate, user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rate post"})
		return
	}
	if rate == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.MsgNotFound})
		return
	}

	c.JSON(http.StatusCreated, rate)
}

func (rc *RateController) RemoveRate(c *gin.Context) {
	user := utils.GetUser(c)
	rateID, ok := paramUint(c, "rate_id")
	if !ok {
		return
	}

	deleted, err := repository.RemoveRate(rc.DB, rateID, user.UserID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete rate"})
		return
	}
	if !deleted {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.MsgNotFound})
		return
	}

	c.Status(http.StatusNoContent)
}

func (rc *RateController) RatesForPost(c *gin.Context) {
	user := utils.GetUser(c)
	postID, ok := paramUint(c, "post_id")
	if !ok {
		return
	}

	rates, err := repository.RatesForPost(rc.DB, postID, user.UserID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, rates)
}

func (rc *RateController) MyRates(c *gin.Context) {
	user := utils.GetUser(c)

	rates, err := repository.RatesForUser(rc.DB, user.UserID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, rates)
}

func (rc *RateController) RatesFromUser(c *gin.Context) {
	targetID, ok := paramUint(c, "user_id")
	if !ok {
		return
	}

	rates, err := repository.RatesFromUser(rc.DB, targetID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, rates)
}
