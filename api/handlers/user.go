package handlers

import (
	"net/http"

	"github.com/slugspace/slugspace/database"
	"github.com/slugspace/slugspace/models"
	"github.com/slugspace/slugspace/pkg/audit"

	"github.com/gin-gonic/gin"
)

// GetUserProfile 获取当前用户及其社团/学习小组数据
func GetUserProfile(c *gin.Context) {
	userID, _ := c.Get("userID")

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user data"})
		return
	}

	var clubMemberships []models.ClubMember
	database.DB.Preload("Club").Where("user_id = ?", userID).Find(&clubMemberships)

	var studyGroups []models.StudyGroupMember
	database.DB.Preload("Course").Where("user_id = ?", userID).Find(&studyGroups)

	clubs := make([]models.Club, 0, len(clubMemberships))
	for _, m := range clubMemberships {
		clubs = append(clubs, m.Club)
	}
	courses := make([]models.Course, 0, len(studyGroups))
	for _, m := range studyGroups {
		courses = append(courses, m.Course)
	}

	c.JSON(http.StatusOK, gin.H{
		"user":        user.ToResponse(),
		"clubs":       clubs,
		"studyGroups": courses,
	})
}

// UpdateUserProfile 更新用户资料（兴趣、专业、年级、书院）
func UpdateUserProfile(c *gin.Context) {
	userID, _ := c.Get("userID")

	var req models.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 检查用户名是否已存在
	if req.Username != "" {
		var count int64
		database.DB.Model(&models.User{}).Where("username = ? AND id != ?", req.Username, userID).Count(&count)
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
			return
		}
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find user"})
		return
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Major != "" {
		user.Major = req.Major
	}
	if req.Year != "" {
		user.Year = models.ClassYear(req.Year)
	}
	if req.College != "" {
		user.College = req.College
	}
	if req.Interests != nil {
		user.Interests = models.StringSlice(req.Interests)
	}

	if err := database.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	audit.Record(models.AuditDataUpdate, user.ID, c.ClientIP(), "user/profile", "")
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    user.ToResponse(),
	})
}
