package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// paramUint parses a numeric path parameter, answering 400 on garbage.
func paramUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(v), true
}
