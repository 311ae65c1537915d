package handlers

import (
	"net/http"
	"time"

	"github.com/slugspace/slugspace/database"
	"github.com/slugspace/slugspace/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var courseSortFields = map[string]bool{"name": true, "code": true, "department": true, "student_count": true}

// ListCourses 获取课程列表，支持搜索、院系过滤和分页
func ListCourses(c *gin.Context) {
	page, limit, offset := getPaginationParams(c, 20)

	search := c.Query("search")
	department := c.Query("department")
	sortBy := c.DefaultQuery("sortBy", "name")
	sortOrder := c.DefaultQuery("sortOrder", "asc")

	if !courseSortFields[sortBy] {
		sortBy = "name"
	}
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "asc"
	}

	query := database.DB.Model(&models.Course{}).Where("is_active = ?", true)
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR code LIKE ? OR description LIKE ?", like, like, like)
	}
	if department != "" {
		query = query.Where("department = ?", department)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch courses"})
		return
	}

	var courses []models.Course
	err := query.Preload("Analytics").
		Order(sortBy + " " + sortOrder).
		Offset(offset).Limit(limit).
		Find(&courses).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch courses"})
		return
	}

	if userID, exists := c.Get("userID"); exists {
		trackPageView(userID.(uint))
	}

	c.JSON(http.StatusOK, gin.H{
		"courses": courses,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

// JoinStudyGroup 加入学习小组
func JoinStudyGroup(c *gin.Context) {
	userID, _ := c.Get("userID")

	var req models.StudyGroupJoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 每人最多加入5个学习小组
	var memberships int64
	database.DB.Model(&models.StudyGroupMember{}).
		Where("user_id = ?", userID).Count(&memberships)
	if memberships >= models.MaxStudyGroupsPerUser {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You can only join up to 5 study groups"})
		return
	}

	// 课程不存在时按课程代码自动创建
	var course models.Course
	err := database.DB.Where("code = ?", req.CourseCode).First(&course).Error
	if err == gorm.ErrRecordNotFound {
		course = models.Course{
			ID:       uuid.NewString(),
			Code:     req.CourseCode,
			Name:     req.CourseCode,
			IsActive: true,
		}
		if err := database.DB.Create(&course).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create course"})
			return
		}
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	// 检查是否已加入
	var count int64
	database.DB.Model(&models.StudyGroupMember{}).
		Where("course_id = ? AND user_id = ?", course.ID, userID).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You are already a member of this study group"})
		return
	}

	member := models.StudyGroupMember{
		CourseID: course.ID,
		UserID:   userID.(uint),
		Role:     "member",
		JoinedAt: time.Now(),
	}
	if err := database.DB.Create(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join study group"})
		return
	}

	// 更新课程人数与统计，失败不影响主流程
	database.DB.Model(&course).UpdateColumn("student_count", gorm.Expr("student_count + ?", 1))
	var analytics models.CourseAnalytics
	if err := database.DB.Where(models.CourseAnalytics{CourseID: course.ID}).FirstOrCreate(&analytics).Error; err == nil {
		database.DB.Model(&analytics).UpdateColumn("join_count", gorm.Expr("join_count + ?", 1))
	}
	incrementUserAnalytics(userID.(uint), "study_group_joins")

	c.JSON(http.StatusOK, gin.H{
		"message": "Successfully joined study group",
		"course":  course,
	})
}

// LeaveStudyGroup 退出学习小组
func LeaveStudyGroup(c *gin.Context) {
	userID, _ := c.Get("userID")
	courseCode := c.Param("code")

	var course models.Course
	if err := database.DB.Where("code = ?", courseCode).First(&course).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	result := database.DB.Where("course_id = ? AND user_id = ?", course.ID, userID).
		Delete(&models.StudyGroupMember{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to leave study group"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "You are not a member of this study group"})
		return
	}

	database.DB.Model(&course).UpdateColumn("student_count", gorm.Expr("GREATEST(student_count - 1, 0)"))

	c.JSON(http.StatusOK, gin.H{"message": "Successfully left study group"})
}

// GetStudyGroupMembers 获取学习小组成员列表
func GetStudyGroupMembers(c *gin.Context) {
	courseCode := c.Param("code")

	var course models.Course
	if err := database.DB.Where("code = ?", courseCode).First(&course).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	var members []models.StudyGroupMember
	err := database.DB.Preload("User").
		Where("course_id = ?", course.ID).
		Order("joined_at ASC").
		Find(&members).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch study group members"})
		return
	}

	type memberView struct {
		UserID   uint      `json:"userId"`
		Username string    `json:"username"`
		Major    string    `json:"major"`
		Year     string    `json:"year"`
		JoinedAt time.Time `json:"joinedAt"`
	}
	views := make([]memberView, 0, len(members))
	for _, m := range members {
		views = append(views, memberView{
			UserID:   m.UserID,
			Username: m.User.Username,
			Major:    m.User.Major,
			Year:     string(m.User.Year),
			JoinedAt: m.JoinedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"course":  course.Code,
		"members": views,
	})
}
