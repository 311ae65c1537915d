package models

import (
	"time"
)

// 审计事件类型
type AuditEventType string

const (
	AuditLoginSuccess      AuditEventType = "LOGIN_SUCCESS"
	AuditLoginFailed       AuditEventType = "LOGIN_FAILED"
	AuditLogout            AuditEventType = "LOGOUT"
	AuditAccessDenied      AuditEventType = "ACCESS_DENIED"
	AuditRateLimitExceeded AuditEventType = "RATE_LIMIT_EXCEEDED"
	AuditDataCreate        AuditEventType = "DATA_CREATE"
	AuditDataUpdate        AuditEventType = "DATA_UPDATE"
	AuditDataDelete        AuditEventType = "DATA_DELETE"
)

// AuditLog 审计日志
type AuditLog struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	EventType AuditEventType `gorm:"size:40;not null;index" json:"eventType"`
	UserID    uint           `gorm:"index" json:"userId"`
	IPAddress string         `gorm:"size:45" json:"ipAddress"`
	Resource  string         `gorm:"size:200" json:"resource"`
	Detail    string         `gorm:"type:text" json:"detail"`
	CreatedAt time.Time      `json:"createdAt"`
}
