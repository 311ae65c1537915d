package models

import (
	"time"

	"gorm.io/gorm"
)

// 用户角色
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleAdmin   UserRole = "admin"
)

// 年级
type ClassYear string

const (
	YearFreshman  ClassYear = "freshman"
	YearSophomore ClassYear = "sophomore"
	YearJunior    ClassYear = "junior"
	YearSenior    ClassYear = "senior"
	YearGraduate  ClassYear = "graduate"
)

// User 用户模型
type User struct {
	gorm.Model
	Username  string      `gorm:"size:50;not null;unique" json:"username"`
	Email     string      `gorm:"size:100;not null;unique" json:"email"`
	Password  string      `gorm:"size:255;not null" json:"-"`
	Role      UserRole    `gorm:"size:20;default:'student'" json:"role"`
	Major     string      `gorm:"size:100" json:"major"`
	Year      ClassYear   `gorm:"size:20" json:"year"`
	College   string      `gorm:"size:100" json:"college"`
	Interests StringSlice `gorm:"type:json" json:"interests"`
	JoinDate  time.Time   `json:"joinDate"`
	LastLogin *time.Time  `json:"lastLogin"`
}

// CredentialRequest 用户登录请求
type CredentialRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// RegistrationRequest 用户注册请求
type RegistrationRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// ProfileUpdateRequest 用户资料更新请求
type ProfileUpdateRequest struct {
	Username  string   `json:"username"`
	Major     string   `json:"major"`
	Year      string   `json:"year"`
	College   string   `json:"college"`
	Interests []string `json:"interests"`
}

// UserResponse 用户响应
type UserResponse struct {
	ID        uint       `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      UserRole   `json:"role"`
	Major     string     `json:"major"`
	Year      ClassYear  `json:"year"`
	College   string     `json:"college"`
	Interests []string   `json:"interests"`
	JoinDate  time.Time  `json:"joinDate"`
	LastLogin *time.Time `json:"lastLogin"`
}

// ToResponse 转换为响应
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Major:     u.Major,
		Year:      u.Year,
		College:   u.College,
		Interests: u.Interests,
		JoinDate:  u.JoinDate,
		LastLogin: u.LastLogin,
	}
}
