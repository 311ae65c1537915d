package models

import (
	"time"
)

// College 书院模型
type College struct {
	ID          string      `gorm:"primaryKey;size:36" json:"id"`
	Name        string      `gorm:"size:150;not null;unique" json:"name"`
	Description string      `gorm:"type:text" json:"description"`
	Tags        StringSlice `gorm:"type:json" json:"tags"`
	Stereotypes StringSlice `gorm:"type:json" json:"stereotypes"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
