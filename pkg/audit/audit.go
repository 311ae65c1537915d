package audit

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/slugspace/slugspace/database"
	"github.com/slugspace/slugspace/models"
)

// Record 写入一条审计日志
// 审计属于非关键副作用，写入失败只记日志不中断请求
func Record(eventType models.AuditEventType, userID uint, ip, resource, detail string) {
	if database.DB == nil {
		return
	}

	entry := models.AuditLog{
		ID:        uuid.NewString(),
		EventType: eventType,
		UserID:    userID,
		IPAddress: ip,
		Resource:  resource,
		Detail:    detail,
		CreatedAt: time.Now(),
	}

	if err := database.DB.Create(&entry).Error; err != nil {
		log.Printf("Failed to write audit log: %v", err)
	}
}
