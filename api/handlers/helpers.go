package handlers

import (
	"log"
	"strconv"

	"github.com/slugspace/slugspace/database"
	"github.com/slugspace/slugspace/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// 分页上限
const maxPageLimit = 50

// getPaginationParams 解析分页参数，limit限制在1-50
func getPaginationParams(c *gin.Context, defaultLimit int) (page, limit, offset int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if limit < 1 {
		limit = 1
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	return page, limit, (page - 1) * limit
}

// incrementUserAnalytics 用户行为计数加一，失败不影响主流程
func incrementUserAnalytics(userID uint, column string) {
	if userID == 0 {
		return
	}
	var ua models.UserAnalytics
	if err := database.DB.Where(models.UserAnalytics{UserID: userID}).FirstOrCreate(&ua).Error; err != nil {
		log.Printf("Analytics tracking error: %v", err)
		return
	}
	if err := database.DB.Model(&ua).UpdateColumn(column, gorm.Expr(column+" + ?", 1)).Error; err != nil {
		log.Printf("Analytics tracking error: %v", err)
	}
}

// trackPageView 记录页面访问统计
func trackPageView(userID uint) {
	incrementUserAnalytics(userID, "page_views")
}

// trackSearch 记录搜索统计，失败不影响主流程
func trackSearch(userID uint, term, searchType string, results int) {
	err := database.DB.Create(&models.SearchAnalytics{
		UserID:       userID,
		SearchTerm:   term,
		SearchType:   searchType,
		ResultsCount: results,
	}).Error
	if err != nil {
		log.Printf("Analytics tracking error: %v", err)
	}
	incrementUserAnalytics(userID, "searches")
}
