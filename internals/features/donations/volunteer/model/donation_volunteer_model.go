package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	donorModel "quanlytaitro_backend/internals/features/donors/model"
)

type DonationVolunteer struct {
	DonationVolunteerID uuid.UUID `gorm:"column:donation_volunteer_id;type:uuid;default:gen_random_uuid();primaryKey" json:"donation_volunteer_id"`

	DonationVolunteerDonorID uuid.UUID `gorm:"column:donation_volunteer_donor_id;type:uuid;not null;index" json:"donation_volunteer_donor_id"`

	// MEDICAL | ADMINISTRATIVE | TRANSPORTATION | CARE | OTHER
	DonationVolunteerWorkType string `gorm:"column:donation_volunteer_work_type;type:varchar(30);not null" json:"donation_volunteer_work_type"`
	DonationVolunteerSkills   string `gorm:"column:donation_volunteer_skills;type:text;not null" json:"donation_volunteer_skills"`

	// Ngày bắt đầu — mốc thời gian dùng cho thống kê tình nguyện
	DonationVolunteerStartDate time.Time `gorm:"column:donation_volunteer_start_date;not null;index" json:"donation_volunteer_start_date"`
	DonationVolunteerEndDate   time.Time `gorm:"column:donation_volunteer_end_date;not null" json:"donation_volunteer_end_date"`

	DonationVolunteerHours      float64 `gorm:"column:donation_volunteer_hours;type:numeric(10,2);not null;check:donation_volunteer_hours > 0" json:"donation_volunteer_hours"`
	DonationVolunteerHourlyRate float64 `gorm:"column:donation_volunteer_hourly_rate;type:numeric(18,2);not null;check:donation_volunteer_hourly_rate > 0" json:"donation_volunteer_hourly_rate"`

	// Luôn = hours * hourly_rate, server tự tính lại mỗi lần ghi
	DonationVolunteerTotalValue float64 `gorm:"column:donation_volunteer_total_value;type:numeric(18,2);not null" json:"donation_volunteer_total_value"`

	DonationVolunteerRating      *int    `gorm:"column:donation_volunteer_rating;check:donation_volunteer_rating BETWEEN 1 AND 5" json:"donation_volunteer_rating,omitempty"`
	DonationVolunteerReviewNotes *string `gorm:"column:donation_volunteer_review_notes;type:text" json:"donation_volunteer_review_notes,omitempty"`

	Donor *donorModel.Donor `gorm:"foreignKey:DonationVolunteerDonorID;references:DonorID" json:"donor,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (DonationVolunteer) TableName() string {
	return "donations_volunteer"
}

// RecalcTotalValue luôn tính lại total = hours * rate, bỏ qua giá trị client gửi lên.
func (d *DonationVolunteer) RecalcTotalValue() {
	d.DonationVolunteerTotalValue = d.DonationVolunteerHours * d.DonationVolunteerHourlyRate
}

func (d *DonationVolunteer) BeforeSave(tx *gorm.DB) error {
	d.RecalcTotalValue()
	return nil
}
