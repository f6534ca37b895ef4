package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Loại nhà tài trợ: INDIVIDUAL | COMPANY | ORGANIZATION | COMMUNITY
// Cấp độ: VIP | REGULAR | NEW | POTENTIAL
type Donor struct {
	DonorID uuid.UUID `gorm:"column:donor_id;type:uuid;default:gen_random_uuid();primaryKey" json:"donor_id"`

	DonorFullName string  `gorm:"column:donor_full_name;type:varchar(150);not null" json:"donor_full_name"`
	DonorEmail    *string `gorm:"column:donor_email;type:varchar(150)" json:"donor_email,omitempty"`
	DonorPhone    *string `gorm:"column:donor_phone;type:varchar(30)" json:"donor_phone,omitempty"`
	DonorAddress  *string `gorm:"column:donor_address;type:text" json:"donor_address,omitempty"`

	DonorType string `gorm:"column:donor_type;type:varchar(20);not null;default:'INDIVIDUAL';index" json:"donor_type"`
	DonorTier string `gorm:"column:donor_tier;type:varchar(20);not null;default:'NEW';index" json:"donor_tier"`

	DonorOccupation *string `gorm:"column:donor_occupation;type:varchar(100)" json:"donor_occupation,omitempty"`
	DonorCompany    *string `gorm:"column:donor_company;type:varchar(150)" json:"donor_company,omitempty"`
	DonorPosition   *string `gorm:"column:donor_position;type:varchar(100)" json:"donor_position,omitempty"`

	DonorBirthday          *time.Time `gorm:"column:donor_birthday" json:"donor_birthday,omitempty"`
	DonorFirstDonationDate *time.Time `gorm:"column:donor_first_donation_date" json:"donor_first_donation_date,omitempty"`

	DonorPersonalInterests *string        `gorm:"column:donor_personal_interests;type:text" json:"donor_personal_interests,omitempty"`
	DonorAreasOfInterest   pq.StringArray `gorm:"column:donor_areas_of_interest;type:text[]" json:"donor_areas_of_interest,omitempty"`
	DonorNotes             *string        `gorm:"column:donor_notes;type:text" json:"donor_notes,omitempty"`

	DonorManagerID *uuid.UUID `gorm:"column:donor_manager_id;type:uuid;index" json:"donor_manager_id,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Donor) TableName() string {
	return "donors"
}
