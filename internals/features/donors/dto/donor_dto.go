package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"quanlytaitro_backend/internals/features/donors/model"
)

type CreateDonorRequest struct {
	DonorFullName string  `json:"donor_full_name" validate:"required,min=2,max=150"`
	DonorEmail    *string `json:"donor_email" validate:"omitempty,email"`
	DonorPhone    *string `json:"donor_phone" validate:"omitempty,max=30"`
	DonorAddress  *string `json:"donor_address"`

	DonorType string `json:"donor_type" validate:"required,oneof=INDIVIDUAL COMPANY ORGANIZATION COMMUNITY"`
	DonorTier string `json:"donor_tier" validate:"required,oneof=VIP REGULAR NEW POTENTIAL"`

	DonorOccupation *string `json:"donor_occupation"`
	DonorCompany    *string `json:"donor_company"`
	DonorPosition   *string `json:"donor_position"`

	DonorBirthday          *time.Time `json:"donor_birthday"`
	DonorFirstDonationDate *time.Time `json:"donor_first_donation_date"`

	DonorPersonalInterests *string  `json:"donor_personal_interests"`
	DonorAreasOfInterest   []string `json:"donor_areas_of_interest"`
	DonorNotes             *string  `json:"donor_notes"`
}

func (r *CreateDonorRequest) ToModel(managerID *uuid.UUID) model.Donor {
	return model.Donor{
		DonorFullName:          r.DonorFullName,
		DonorEmail:             r.DonorEmail,
		DonorPhone:             r.DonorPhone,
		DonorAddress:           r.DonorAddress,
		DonorType:              r.DonorType,
		DonorTier:              r.DonorTier,
		DonorOccupation:        r.DonorOccupation,
		DonorCompany:           r.DonorCompany,
		DonorPosition:          r.DonorPosition,
		DonorBirthday:          r.DonorBirthday,
		DonorFirstDonationDate: r.DonorFirstDonationDate,
		DonorPersonalInterests: r.DonorPersonalInterests,
		DonorAreasOfInterest:   pq.StringArray(r.DonorAreasOfInterest),
		DonorNotes:             r.DonorNotes,
		DonorManagerID:         managerID,
	}
}

type UpdateDonorRequest struct {
	DonorFullName *string `json:"donor_full_name" validate:"omitempty,min=2,max=150"`
	DonorEmail    *string `json:"donor_email" validate:"omitempty,email"`
	DonorPhone    *string `json:"donor_phone" validate:"omitempty,max=30"`
	DonorAddress  *string `json:"donor_address"`

	DonorType *string `json:"donor_type" validate:"omitempty,oneof=INDIVIDUAL COMPANY ORGANIZATION COMMUNITY"`
	DonorTier *string `json:"donor_tier" validate:"omitempty,oneof=VIP REGULAR NEW POTENTIAL"`

	DonorOccupation *string `json:"donor_occupation"`
	DonorCompany    *string `json:"donor_company"`
	DonorPosition   *string `json:"donor_position"`

	DonorBirthday          *time.Time `json:"donor_birthday"`
	DonorFirstDonationDate *time.Time `json:"donor_first_donation_date"`

	DonorPersonalInterests *string  `json:"donor_personal_interests"`
	DonorAreasOfInterest   []string `json:"donor_areas_of_interest"`
	DonorNotes             *string  `json:"donor_notes"`
}

// ApplyTo chỉ ghi đè các field client gửi lên.
func (r *UpdateDonorRequest) ApplyTo(d *model.Donor) {
	if r.DonorFullName != nil {
		d.DonorFullName = *r.DonorFullName
	}
	if r.DonorEmail != nil {
		d.DonorEmail = r.DonorEmail
	}
	if r.DonorPhone != nil {
		d.DonorPhone = r.DonorPhone
	}
	if r.DonorAddress != nil {
		d.DonorAddress = r.DonorAddress
	}
	if r.DonorType != nil {
		d.DonorType = *r.DonorType
	}
	if r.DonorTier != nil {
		d.DonorTier = *r.DonorTier
	}
	if r.DonorOccupation != nil {
		d.DonorOccupation = r.DonorOccupation
	}
	if r.DonorCompany != nil {
		d.DonorCompany = r.DonorCompany
	}
	if r.DonorPosition != nil {
		d.DonorPosition = r.DonorPosition
	}
	if r.DonorBirthday != nil {
		d.DonorBirthday = r.DonorBirthday
	}
	if r.DonorFirstDonationDate != nil {
		d.DonorFirstDonationDate = r.DonorFirstDonationDate
	}
	if r.DonorPersonalInterests != nil {
		d.DonorPersonalInterests = r.DonorPersonalInterests
	}
	if r.DonorAreasOfInterest != nil {
		d.DonorAreasOfInterest = pq.StringArray(r.DonorAreasOfInterest)
	}
	if r.DonorNotes != nil {
		d.DonorNotes = r.DonorNotes
	}
}
