package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	donorModel "quanlytaitro_backend/internals/features/donors/model"
)

// Nhắc việc chăm sóc nhà tài trợ (BIRTHDAY | FOLLOW_UP | THANK_YOU | OTHER).
// Có thể gắn với một nhà tài trợ hoặc đứng độc lập.
type Reminder struct {
	ReminderID uuid.UUID `gorm:"column:reminder_id;type:uuid;default:gen_random_uuid();primaryKey" json:"reminder_id"`

	ReminderDonorID *uuid.UUID `gorm:"column:reminder_donor_id;type:uuid;index" json:"reminder_donor_id,omitempty"`

	ReminderType        string  `gorm:"column:reminder_type;type:varchar(30);not null;default:'OTHER'" json:"reminder_type"`
	ReminderTitle       string  `gorm:"column:reminder_title;type:varchar(200);not null" json:"reminder_title"`
	ReminderDescription *string `gorm:"column:reminder_description;type:text" json:"reminder_description,omitempty"`

	ReminderDueDate time.Time `gorm:"column:reminder_due_date;not null;index" json:"reminder_due_date"`

	ReminderIsCompleted bool       `gorm:"column:reminder_is_completed;not null;default:false" json:"reminder_is_completed"`
	ReminderCompletedAt *time.Time `gorm:"column:reminder_completed_at" json:"reminder_completed_at,omitempty"`

	Donor *donorModel.Donor `gorm:"foreignKey:ReminderDonorID;references:DonorID" json:"donor,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Reminder) TableName() string {
	return "reminders"
}

// Bucket của một reminder so với thời điểm "now".
type Bucket string

const (
	BucketToday     Bucket = "today"
	BucketUpcoming  Bucket = "upcoming"
	BucketOverdue   Bucket = "overdue"
	BucketCompleted Bucket = "completed"
)

// Classify xếp reminder vào đúng một bucket. Hoàn thành thắng mọi
// trạng thái khác, phần còn lại so theo ngày lịch với mốc "now".
// Filter SQL của endpoint danh sách dùng cùng biên qua DayBounds.
func (r Reminder) Classify(now time.Time) Bucket {
	if r.ReminderIsCompleted {
		return BucketCompleted
	}
	today, tomorrow := DayBounds(now)
	switch {
	case r.ReminderDueDate.Before(today):
		return BucketOverdue
	case r.ReminderDueDate.Before(tomorrow):
		return BucketToday
	default:
		return BucketUpcoming
	}
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayBounds trả về biên [hôm nay 00:00, ngày mai 00:00) của "now".
func DayBounds(now time.Time) (today, tomorrow time.Time) {
	today = StartOfDay(now)
	return today, today.AddDate(0, 0, 1)
}
