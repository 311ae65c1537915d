package models

import (
	"time"
)

// UserAnalytics 用户行为统计
type UserAnalytics struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;uniqueIndex" json:"userId"`
	PageViews       int       `gorm:"default:0" json:"pageViews"`
	Searches        int       `gorm:"default:0" json:"searches"`
	ClubJoins       int       `gorm:"default:0" json:"clubJoins"`
	StudyGroupJoins int       `gorm:"default:0" json:"studyGroupJoins"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// SearchAnalytics 搜索记录
type SearchAnalytics struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"index" json:"userId"`
	SearchTerm   string    `gorm:"size:200" json:"searchTerm"`
	SearchType   string    `gorm:"size:20" json:"searchType"`
	ResultsCount int       `json:"resultsCount"`
	CreatedAt    time.Time `json:"createdAt"`
}
