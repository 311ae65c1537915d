package handlers

import (
	"net/http"

	"github.com/slugspace/slugspace/database"
	"github.com/slugspace/slugspace/models"

	"github.com/gin-gonic/gin"
)

// ListColleges 获取书院列表
func ListColleges(c *gin.Context) {
	page, limit, offset := getPaginationParams(c, 20)
	search := c.Query("search")

	query := database.DB.Model(&models.College{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch colleges"})
		return
	}

	var colleges []models.College
	if err := query.Order("name ASC").Offset(offset).Limit(limit).Find(&colleges).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch colleges"})
		return
	}

	if userID, exists := c.Get("userID"); exists {
		trackPageView(userID.(uint))
	}

	c.JSON(http.StatusOK, gin.H{
		"colleges": colleges,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}
