package dto

import (
	"time"

	"github.com/google/uuid"

	"quanlytaitro_backend/internals/features/donations/volunteer/model"
)

type CreateDonationVolunteerRequest struct {
	DonationVolunteerDonorID  uuid.UUID `json:"donation_volunteer_donor_id" validate:"required"`
	DonationVolunteerWorkType string    `json:"donation_volunteer_work_type" validate:"required,oneof=MEDICAL ADMINISTRATIVE TRANSPORTATION CARE OTHER"`
	DonationVolunteerSkills   string    `json:"donation_volunteer_skills" validate:"required"`

	DonationVolunteerStartDate time.Time `json:"donation_volunteer_start_date" validate:"required"`
	DonationVolunteerEndDate   time.Time `json:"donation_volunteer_end_date" validate:"required,gtefield=DonationVolunteerStartDate"`

	DonationVolunteerHours      float64 `json:"donation_volunteer_hours" validate:"required,gt=0"`
	DonationVolunteerHourlyRate float64 `json:"donation_volunteer_hourly_rate" validate:"required,gt=0"`

	// total_value client gửi lên bị bỏ qua — server luôn tự tính
	DonationVolunteerTotalValue float64 `json:"donation_volunteer_total_value"`

	DonationVolunteerRating      *int    `json:"donation_volunteer_rating" validate:"omitempty,min=1,max=5"`
	DonationVolunteerReviewNotes *string `json:"donation_volunteer_review_notes"`
}

func (r *CreateDonationVolunteerRequest) ToModel() model.DonationVolunteer {
	m := model.DonationVolunteer{
		DonationVolunteerDonorID:     r.DonationVolunteerDonorID,
		DonationVolunteerWorkType:    r.DonationVolunteerWorkType,
		DonationVolunteerSkills:      r.DonationVolunteerSkills,
		DonationVolunteerStartDate:   r.DonationVolunteerStartDate,
		DonationVolunteerEndDate:     r.DonationVolunteerEndDate,
		DonationVolunteerHours:       r.DonationVolunteerHours,
		DonationVolunteerHourlyRate:  r.DonationVolunteerHourlyRate,
		DonationVolunteerRating:      r.DonationVolunteerRating,
		DonationVolunteerReviewNotes: r.DonationVolunteerReviewNotes,
	}
	m.RecalcTotalValue()
	return m
}

type UpdateDonationVolunteerRequest struct {
	DonationVolunteerWorkType *string `json:"donation_volunteer_work_type" validate:"omitempty,oneof=MEDICAL ADMINISTRATIVE TRANSPORTATION CARE OTHER"`
	DonationVolunteerSkills   *string `json:"donation_volunteer_skills"`

	DonationVolunteerStartDate *time.Time `json:"donation_volunteer_start_date"`
	DonationVolunteerEndDate   *time.Time `json:"donation_volunteer_end_date"`

	DonationVolunteerHours      *float64 `json:"donation_volunteer_hours" validate:"omitempty,gt=0"`
	DonationVolunteerHourlyRate *float64 `json:"donation_volunteer_hourly_rate" validate:"omitempty,gt=0"`

	DonationVolunteerRating      *int    `json:"donation_volunteer_rating" validate:"omitempty,min=1,max=5"`
	DonationVolunteerReviewNotes *string `json:"donation_volunteer_review_notes"`
}

// ApplyTo ghi đè field được gửi lên rồi tính lại total_value.
func (r *UpdateDonationVolunteerRequest) ApplyTo(d *model.DonationVolunteer) {
	if r.DonationVolunteerWorkType != nil {
		d.DonationVolunteerWorkType = *r.DonationVolunteerWorkType
	}
	if r.DonationVolunteerSkills != nil {
		d.DonationVolunteerSkills = *r.DonationVolunteerSkills
	}
	if r.DonationVolunteerStartDate != nil {
		d.DonationVolunteerStartDate = *r.DonationVolunteerStartDate
	}
	if r.DonationVolunteerEndDate != nil {
		d.DonationVolunteerEndDate = *r.DonationVolunteerEndDate
	}
	if r.DonationVolunteerHours != nil {
		d.DonationVolunteerHours = *r.DonationVolunteerHours
	}
	if r.DonationVolunteerHourlyRate != nil {
		d.DonationVolunteerHourlyRate = *r.DonationVolunteerHourlyRate
	}
	if r.DonationVolunteerRating != nil {
		d.DonationVolunteerRating = r.DonationVolunteerRating
	}
	if r.DonationVolunteerReviewNotes != nil {
		d.DonationVolunteerReviewNotes = r.DonationVolunteerReviewNotes
	}
	d.RecalcTotalValue()
}
