package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/photo-share/api-go/repository"
	"github.com/photo-share/api-go/services/cloudinary"
	"github.com/photo-share/api-go/utils"
	"gorm.io/gorm"
)

type SearchController struct {
	DB  *gorm.DB
	CLD *cloudinary.Client
}

type SearchPostsRequest struct {
	SearchStr string `json:"search_str" binding:"required,min=1"`
	Sort      string `json:"sort" binding:"omitempty,oneof=rate date"`
	SortType  string `json:"sort_type" binding:"omitempty,oneof=asc desc"`
}

type SearchUsersRequest struct {
	SearchStr string `json:"search_str" binding:"required,min=1"`
	Sort      string `json:"sort" binding:"omitempty,oneof=username email name date"`
	SortType  string `json:"sort_type" binding:"omitempty,oneof=asc desc"`
}

func NewSearchController(db *gorm.DB, cld *cloudinary.Client) *SearchController {
	return &SearchController{DB: db, CLD: cld}
}

// SearchPosts matches free text against descriptions and tags, sortable by
// average rating or creation date. Pagination stays in the query string.
func (sc *SearchController) SearchPosts(c *gin.Context) {
	var req SearchPostsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	skip, limit := utils.Pagination(c, 10)

	results, err := repository.SearchPosts(sc.DB, req.SearchStr, req.Sort, req.SortType == "asc", skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	for i := range results {
		results[i].DisplayURL = sc.CLD.DisplayURL(results[i].PhotoURL)
	}

	c.JSON(http.StatusOK, results)
}

// SearchUsers matches free text against account fields. Admin/moderator only
// at the route layer.
func (sc *SearchController) SearchUsers(c *gin.Context) {
	var req SearchUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	skip, limit := utils.Pagination(c, 10)

	users, err := repository.SearchUsers(sc.DB, req.SearchStr, req.Sort, req.SortType == "asc", skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, users)
}
