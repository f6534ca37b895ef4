package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	donorModel "quanlytaitro_backend/internals/features/donors/model"
)

// Nhật ký tiếp xúc với nhà tài trợ (CALL | EMAIL | MEETING | EVENT)
type Interaction struct {
	InteractionID uuid.UUID `gorm:"column:interaction_id;type:uuid;default:gen_random_uuid();primaryKey" json:"interaction_id"`

	InteractionDonorID uuid.UUID `gorm:"column:interaction_donor_id;type:uuid;not null;index" json:"interaction_donor_id"`

	InteractionType    string    `gorm:"column:interaction_type;type:varchar(20);not null" json:"interaction_type"`
	InteractionDate    time.Time `gorm:"column:interaction_date;not null;index" json:"interaction_date"`
	InteractionSubject *string   `gorm:"column:interaction_subject;type:varchar(200)" json:"interaction_subject,omitempty"`
	InteractionNotes   *string   `gorm:"column:interaction_notes;type:text" json:"interaction_notes,omitempty"`

	Donor *donorModel.Donor `gorm:"foreignKey:InteractionDonorID;references:DonorID" json:"donor,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Interaction) TableName() string {
	return "interactions"
}
