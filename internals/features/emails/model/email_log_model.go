package model

import (
	"time"

	"github.com/google/uuid"

	donorModel "quanlytaitro_backend/internals/features/donors/model"
)

// Bản ghi email đã render cho một nhà tài trợ. Immutable — không update, không soft delete.
// Trạng thái: SENT | PENDING | FAILED
type EmailLog struct {
	EmailLogID uuid.UUID `gorm:"column:email_log_id;type:uuid;default:gen_random_uuid();primaryKey" json:"email_log_id"`

	EmailLogDonorID    uuid.UUID  `gorm:"column:email_log_donor_id;type:uuid;not null;index" json:"email_log_donor_id"`
	EmailLogTemplateID *uuid.UUID `gorm:"column:email_log_template_id;type:uuid;index" json:"email_log_template_id,omitempty"`

	EmailLogSubject string `gorm:"column:email_log_subject;type:varchar(300);not null" json:"email_log_subject"`
	EmailLogBody    string `gorm:"column:email_log_body;type:text;not null" json:"email_log_body"`

	EmailLogStatus string     `gorm:"column:email_log_status;type:varchar(20);not null;default:'SENT'" json:"email_log_status"`
	EmailLogSentAt *time.Time `gorm:"column:email_log_sent_at" json:"email_log_sent_at,omitempty"`

	Donor *donorModel.Donor `gorm:"foreignKey:EmailLogDonorID;references:DonorID" json:"donor,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (EmailLog) TableName() string {
	return "email_logs"
}
