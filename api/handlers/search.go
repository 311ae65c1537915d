package handlers

import (
	"net/http"

	"github.com/slugspace/slugspace/database"
	"github.com/slugspace/slugspace/models"

	"github.com/gin-gonic/gin"
)

// 非指定类型时每类返回的条数
const crossTypeLimit = 5

// Search 跨社团/课程/书院的统一搜索
func Search(c *gin.Context) {
	_, limit, _ := getPaginationParams(c, 20)

	term := c.Query("q")
	searchType := c.DefaultQuery("type", "all")

	if term == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search term is required"})
		return
	}

	like := "%" + term + "%"
	clubs := []models.Club{}
	courses := []models.Course{}
	colleges := []models.College{}

	if searchType == "all" || searchType == "clubs" {
		take := crossTypeLimit
		if searchType == "clubs" {
			take = limit
		}
		err := database.DB.Where("is_active = ?", true).
			Where("name LIKE ? OR description LIKE ? OR category LIKE ?", like, like, like).
			Limit(take).
			Find(&clubs).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to perform search"})
			return
		}
	}

	if searchType == "all" || searchType == "courses" {
		take := crossTypeLimit
		if searchType == "courses" {
			take = limit
		}
		err := database.DB.Where("is_active = ?", true).
			Where("name LIKE ? OR code LIKE ? OR description LIKE ? OR department LIKE ?", like, like, like, like).
			Limit(take).
			Find(&courses).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to perform search"})
			return
		}
	}

	if searchType == "all" || searchType == "colleges" {
		take := crossTypeLimit
		if searchType == "colleges" {
			take = limit
		}
		err := database.DB.Where("name LIKE ? OR description LIKE ?", like, like).
			Limit(take).
			Find(&colleges).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to perform search"})
			return
		}
	}

	total := len(clubs) + len(courses) + len(colleges)

	// 搜索统计是非关键副作用
	if userID, exists := c.Get("userID"); exists {
		trackSearch(userID.(uint), term, searchType, total)
	}

	c.JSON(http.StatusOK, gin.H{
		"results": gin.H{
			"clubs":    clubs,
			"courses":  courses,
			"colleges": colleges,
			"total":    total,
		},
		"searchTerm": term,
		"type":       searchType,
	})
}
