package handlers

import (
	"net/http"

	"github.com/slugspace/slugspace/database"
	"github.com/slugspace/slugspace/models"

	"github.com/gin-gonic/gin"
)

// GetAnalyticsDashboard 获取管理端统计面板数据（仅管理员）
func GetAnalyticsDashboard(c *gin.Context) {
	var totalUsers, totalClubs, totalCourses, totalColleges int64
	var totalClubMemberships, totalStudyGroupMemberships int64

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.User{}, &totalUsers},
		{&models.Club{}, &totalClubs},
		{&models.Course{}, &totalCourses},
		{&models.College{}, &totalColleges},
		{&models.ClubMember{}, &totalClubMemberships},
		{&models.StudyGroupMember{}, &totalStudyGroupMemberships},
	}
	for _, item := range counts {
		if err := database.DB.Model(item.model).Count(item.dest).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
			return
		}
	}

	// 最近注册的用户
	var recentUsers []models.User
	database.DB.Order("created_at DESC").Limit(5).Find(&recentUsers)
	recent := make([]gin.H, 0, len(recentUsers))
	for _, u := range recentUsers {
		recent = append(recent, gin.H{
			"id":        u.ID,
			"username":  u.Username,
			"email":     u.Email,
			"createdAt": u.CreatedAt,
		})
	}

	// 按加入热度排序的社团
	type popularClub struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Category string `json:"category"`
		Members  int    `json:"members"`
	}
	var popularClubs []popularClub
	database.DB.Model(&models.Club{}).
		Select("clubs.id, clubs.name, clubs.category, COUNT(club_members.id) AS members").
		Joins("LEFT JOIN club_members ON club_members.club_id = clubs.id").
		Group("clubs.id, clubs.name, clubs.category").
		Order("members DESC").
		Limit(5).
		Scan(&popularClubs)

	// 按学生人数排序的课程
	var popularCourses []models.Course
	database.DB.Order("student_count DESC").Limit(5).Find(&popularCourses)

	c.JSON(http.StatusOK, gin.H{
		"overview": gin.H{
			"totalUsers":                 totalUsers,
			"totalClubs":                 totalClubs,
			"totalCourses":               totalCourses,
			"totalColleges":              totalColleges,
			"totalClubMemberships":       totalClubMemberships,
			"totalStudyGroupMemberships": totalStudyGroupMemberships,
		},
		"recentUsers":    recent,
		"popularClubs":   popularClubs,
		"popularCourses": popularCourses,
	})
}
