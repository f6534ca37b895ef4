package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Mẫu email với token thay thế: {tên} {hạng} {email} {phone} {số_tiền} {ngày}
// Loại: THANK_YOU | BIRTHDAY | HOLIDAY | REPORT | OTHER
type EmailTemplate struct {
	EmailTemplateID uuid.UUID `gorm:"column:email_template_id;type:uuid;default:gen_random_uuid();primaryKey" json:"email_template_id"`

	EmailTemplateName    string `gorm:"column:email_template_name;type:varchar(150);not null" json:"email_template_name"`
	EmailTemplateSubject string `gorm:"column:email_template_subject;type:varchar(300);not null" json:"email_template_subject"`
	EmailTemplateBody    string `gorm:"column:email_template_body;type:text;not null" json:"email_template_body"`
	EmailTemplateType    string `gorm:"column:email_template_type;type:varchar(30);not null;default:'OTHER';index" json:"email_template_type"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (EmailTemplate) TableName() string {
	return "email_templates"
}
