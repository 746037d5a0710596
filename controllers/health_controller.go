package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// Healthcheck pings the database so load balancers see real readiness.
func (hc *HealthController) Healthcheck(c *gin.Context) {
	sqlDB, err := hc.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "Database unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Welcome to PhotoShare API"})
}
