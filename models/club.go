package models

import (
	"time"
)

// Club 社团模型
type Club struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	Name            string    `gorm:"size:150;not null" json:"name"`
	Description     string    `gorm:"type:text" json:"description"`
	Category        string    `gorm:"size:100;index" json:"category"`
	MeetingTime     string    `gorm:"size:100" json:"meetingTime"`
	MeetingLocation string    `gorm:"size:150" json:"meetingLocation"`
	ContactEmail    string    `gorm:"size:100" json:"contactEmail"`
	IsActive        bool      `gorm:"default:true" json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	Members   []ClubMember   `gorm:"foreignKey:ClubID" json:"-"`
	Analytics *ClubAnalytics `gorm:"foreignKey:ClubID" json:"analytics,omitempty"`
}

// ClubMember 社团成员关系
type ClubMember struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ClubID    string    `gorm:"size:36;not null;uniqueIndex:idx_club_user" json:"clubId"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_club_user" json:"userId"`
	Role      string    `gorm:"size:20;default:'member'" json:"role"`
	JoinedAt  time.Time `json:"joinedAt"`
	Club      Club      `gorm:"foreignKey:ClubID" json:"-"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
}

// ClubAnalytics 社团活跃度统计
type ClubAnalytics struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ClubID    string    `gorm:"size:36;not null;uniqueIndex" json:"clubId"`
	JoinCount int       `gorm:"default:0" json:"joinCount"`
	ViewCount int       `gorm:"default:0" json:"viewCount"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PopularityScore 加入数与浏览数之和，作为热度信号
func (a *ClubAnalytics) PopularityScore() int {
	if a == nil {
		return 0
	}
	return a.JoinCount + a.ViewCount
}

// ClubRequest 创建社团请求
type ClubRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description" binding:"required"`
	Category        string `json:"category" binding:"required"`
	MeetingTime     string `json:"meetingTime"`
	MeetingLocation string `json:"meetingLocation"`
	ContactEmail    string `json:"contactEmail"`
}
