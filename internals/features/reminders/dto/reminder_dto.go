package dto

import (
	"time"

	"github.com/google/uuid"

	"quanlytaitro_backend/internals/features/reminders/model"
)

type CreateReminderRequest struct {
	ReminderDonorID     *uuid.UUID `json:"reminder_donor_id"`
	ReminderType        string     `json:"reminder_type" validate:"required,oneof=BIRTHDAY FOLLOW_UP THANK_YOU OTHER"`
	ReminderTitle       string     `json:"reminder_title" validate:"required,max=200"`
	ReminderDescription *string    `json:"reminder_description"`
	ReminderDueDate     time.Time  `json:"reminder_due_date" validate:"required"`
}

func (r *CreateReminderRequest) ToModel() model.Reminder {
	return model.Reminder{
		ReminderDonorID:     r.ReminderDonorID,
		ReminderType:        r.ReminderType,
		ReminderTitle:       r.ReminderTitle,
		ReminderDescription: r.ReminderDescription,
		ReminderDueDate:     r.ReminderDueDate,
	}
}

type UpdateReminderRequest struct {
	ReminderType        *string    `json:"reminder_type" validate:"omitempty,oneof=BIRTHDAY FOLLOW_UP THANK_YOU OTHER"`
	ReminderTitle       *string    `json:"reminder_title" validate:"omitempty,max=200"`
	ReminderDescription *string    `json:"reminder_description"`
	ReminderDueDate     *time.Time `json:"reminder_due_date"`
	ReminderIsCompleted *bool      `json:"reminder_is_completed"`
}

// ApplyTo ghi đè field được gửi lên. Đánh dấu hoàn thành sẽ đóng mốc
// completed_at, bỏ đánh dấu thì xoá mốc.
func (r *UpdateReminderRequest) ApplyTo(m *model.Reminder, now time.Time) {
	if r.ReminderType != nil {
		m.ReminderType = *r.ReminderType
	}
	if r.ReminderTitle != nil {
		m.ReminderTitle = *r.ReminderTitle
	}
	if r.ReminderDescription != nil {
		m.ReminderDescription = r.ReminderDescription
	}
	if r.ReminderDueDate != nil {
		m.ReminderDueDate = *r.ReminderDueDate
	}
	if r.ReminderIsCompleted != nil {
		m.ReminderIsCompleted = *r.ReminderIsCompleted
		if *r.ReminderIsCompleted {
			if m.ReminderCompletedAt == nil {
				m.ReminderCompletedAt = &now
			}
		} else {
			m.ReminderCompletedAt = nil
		}
	}
}
