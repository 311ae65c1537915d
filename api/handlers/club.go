package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/slugspace/slugspace/database"
	"github.com/slugspace/slugspace/models"
	"github.com/slugspace/slugspace/pkg/audit"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 排序白名单，防止order by注入
var clubSortFields = map[string]bool{"name": true, "category": true, "created_at": true}

// ListClubs 获取社团列表，支持搜索、类别过滤和分页
func ListClubs(c *gin.Context) {
	page, limit, offset := getPaginationParams(c, 20)

	search := c.Query("search")
	category := c.Query("category")
	sortBy := c.DefaultQuery("sortBy", "name")
	sortOrder := c.DefaultQuery("sortOrder", "asc")

	if !clubSortFields[sortBy] {
		sortBy = "name"
	}
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "asc"
	}

	query := database.DB.Model(&models.Club{}).Where("is_active = ?", true)
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch clubs"})
		return
	}

	var clubs []models.Club
	err := query.Preload("Analytics").
		Order(sortBy + " " + sortOrder).
		Offset(offset).Limit(limit).
		Find(&clubs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch clubs"})
		return
	}

	if userID, exists := c.Get("userID"); exists {
		trackPageView(userID.(uint))
	}

	c.JSON(http.StatusOK, gin.H{
		"clubs": clubs,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

// GetClub 获取社团详情并累计浏览次数
func GetClub(c *gin.Context) {
	clubID := c.Param("id")

	var club models.Club
	err := database.DB.Preload("Analytics").
		First(&club, "id = ? AND is_active = ?", clubID, true).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Club not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var memberCount int64
	database.DB.Model(&models.ClubMember{}).Where("club_id = ?", clubID).Count(&memberCount)

	// 浏览统计失败不影响主流程
	var analytics models.ClubAnalytics
	if err := database.DB.Where(models.ClubAnalytics{ClubID: clubID}).FirstOrCreate(&analytics).Error; err == nil {
		database.DB.Model(&analytics).UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	}
	if userID, exists := c.Get("userID"); exists {
		trackPageView(userID.(uint))
	}

	c.JSON(http.StatusOK, gin.H{
		"club":        club,
		"memberCount": memberCount,
	})
}

// CreateClub 创建社团（仅管理员）
func CreateClub(c *gin.Context) {
	var req models.ClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	club := models.Club{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		MeetingTime:     req.MeetingTime,
		MeetingLocation: req.MeetingLocation,
		ContactEmail:    req.ContactEmail,
		IsActive:        true,
	}

	if err := database.DB.Create(&club).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create club"})
		return
	}

	// 统计行创建失败不阻塞主流程
	if err := database.DB.Create(&models.ClubAnalytics{ClubID: club.ID}).Error; err != nil {
		log.Printf("Analytics creation failed: %v", err)
	}

	userID, _ := c.Get("userID")
	id, _ := userID.(uint)
	audit.Record(models.AuditDataCreate, id, c.ClientIP(), "clubs", club.ID)

	c.JSON(http.StatusCreated, gin.H{"club": club})
}

// JoinClub 加入社团
func JoinClub(c *gin.Context) {
	userID, _ := c.Get("userID")
	clubID := c.Param("id")

	var club models.Club
	if err := database.DB.First(&club, "id = ? AND is_active = ?", clubID, true).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Club not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	// 检查是否已是成员
	var count int64
	database.DB.Model(&models.ClubMember{}).
		Where("club_id = ? AND user_id = ?", clubID, userID).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "You are already a member of this club"})
		return
	}

	member := models.ClubMember{
		ClubID:   clubID,
		UserID:   userID.(uint),
		Role:     "member",
		JoinedAt: time.Now(),
	}
	if err := database.DB.Create(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join club"})
		return
	}

	// 更新社团加入统计，失败不影响主流程
	var analytics models.ClubAnalytics
	if err := database.DB.Where(models.ClubAnalytics{ClubID: clubID}).FirstOrCreate(&analytics).Error; err == nil {
		database.DB.Model(&analytics).UpdateColumn("join_count", gorm.Expr("join_count + ?", 1))
	}
	incrementUserAnalytics(userID.(uint), "club_joins")

	c.JSON(http.StatusOK, gin.H{"message": "Successfully joined club"})
}

// LeaveClub 退出社团
func LeaveClub(c *gin.Context) {
	userID, _ := c.Get("userID")
	clubID := c.Param("id")

	result := database.DB.Where("club_id = ? AND user_id = ?", clubID, userID).
		Delete(&models.ClubMember{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to leave club"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "You are not a member of this club"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully left club"})
}

// GetClubMembers 获取社团成员列表
func GetClubMembers(c *gin.Context) {
	clubID := c.Param("id")

	var members []models.ClubMember
	err := database.DB.Preload("User").
		Where("club_id = ?", clubID).
		Order("joined_at ASC").
		Find(&members).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch club members"})
		return
	}

	type memberView struct {
		UserID   uint      `json:"userId"`
		Username string    `json:"username"`
		Major    string    `json:"major"`
		Year     string    `json:"year"`
		Role     string    `json:"role"`
		JoinedAt time.Time `json:"joinedAt"`
	}
	views := make([]memberView, 0, len(members))
	for _, m := range members {
		views = append(views, memberView{
			UserID:   m.UserID,
			Username: m.User.Username,
			Major:    m.User.Major,
			Year:     string(m.User.Year),
			Role:     m.Role,
			JoinedAt: m.JoinedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"members":     views,
		"memberCount": len(views),
	})
}
