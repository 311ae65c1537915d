package models

import (
	"time"
)

// Course 课程模型
type Course struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Code         string    `gorm:"size:20;not null;unique" json:"code"`
	Name         string    `gorm:"size:150;not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Department   string    `gorm:"size:100;index" json:"department"`
	StudentCount int       `gorm:"default:0" json:"studentCount"`
	IsActive     bool      `gorm:"default:true" json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	StudyGroupMembers []StudyGroupMember `gorm:"foreignKey:CourseID" json:"-"`
	Analytics         *CourseAnalytics   `gorm:"foreignKey:CourseID" json:"analytics,omitempty"`
}

// StudyGroupMember 学习小组成员关系
type StudyGroupMember struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	CourseID string    `gorm:"size:36;not null;uniqueIndex:idx_course_user" json:"courseId"`
	UserID   uint      `gorm:"not null;uniqueIndex:idx_course_user" json:"userId"`
	Role     string    `gorm:"size:20;default:'member'" json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
	Course   Course    `gorm:"foreignKey:CourseID" json:"-"`
	User     User      `gorm:"foreignKey:UserID" json:"-"`
}

// CourseAnalytics 课程活跃度统计
type CourseAnalytics struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CourseID  string    `gorm:"size:36;not null;uniqueIndex" json:"courseId"`
	JoinCount int       `gorm:"default:0" json:"joinCount"`
	ViewCount int       `gorm:"default:0" json:"viewCount"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ActivityScore 加入数与浏览数之和，作为活跃度信号
func (a *CourseAnalytics) ActivityScore() int {
	if a == nil {
		return 0
	}
	return a.JoinCount + a.ViewCount
}

// StudyGroupJoinRequest 加入学习小组请求
type StudyGroupJoinRequest struct {
	CourseCode string `json:"courseCode" binding:"required"`
}

// 每个用户最多可加入的学习小组数量
const MaxStudyGroupsPerUser = 5
