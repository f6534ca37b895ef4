package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Nhân viên phòng quan hệ cộng đồng (ADMIN | USER)
type User struct {
	UserID   uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserName string    `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`

	UserEmail    string `gorm:"column:user_email;type:varchar(150);unique;not null" json:"user_email"`
	UserPassword string `gorm:"column:user_password;type:text;not null" json:"-"`

	UserRole string `gorm:"column:user_role;type:varchar(20);not null;default:'USER'" json:"user_role"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}
