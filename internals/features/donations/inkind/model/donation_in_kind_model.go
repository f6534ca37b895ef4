package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	donorModel "quanlytaitro_backend/internals/features/donors/model"
)

type DonationInKind struct {
	DonationInKindID uuid.UUID `gorm:"column:donation_in_kind_id;type:uuid;default:gen_random_uuid();primaryKey" json:"donation_in_kind_id"`

	DonationInKindDonorID uuid.UUID `gorm:"column:donation_in_kind_donor_id;type:uuid;not null;index" json:"donation_in_kind_donor_id"`

	DonationInKindItemName string `gorm:"column:donation_in_kind_item_name;type:varchar(200);not null" json:"donation_in_kind_item_name"`

	// MEDICAL_EQUIPMENT | MEDICINE | SUPPLIES | FOOD | OTHER
	DonationInKindCategory string `gorm:"column:donation_in_kind_category;type:varchar(30);not null;index" json:"donation_in_kind_category"`

	DonationInKindQuantity int    `gorm:"column:donation_in_kind_quantity;not null;check:donation_in_kind_quantity > 0" json:"donation_in_kind_quantity"`
	DonationInKindUnit     string `gorm:"column:donation_in_kind_unit;type:varchar(30);not null" json:"donation_in_kind_unit"`

	// NEW | USED
	DonationInKindCondition  string     `gorm:"column:donation_in_kind_condition;type:varchar(10);not null;default:'NEW'" json:"donation_in_kind_condition"`
	DonationInKindExpiryDate *time.Time `gorm:"column:donation_in_kind_expiry_date" json:"donation_in_kind_expiry_date,omitempty"`

	DonationInKindEstimatedValue float64 `gorm:"column:donation_in_kind_estimated_value;type:numeric(18,2);not null;check:donation_in_kind_estimated_value > 0" json:"donation_in_kind_estimated_value"`

	DonationInKindImageURLs datatypes.JSON `gorm:"column:donation_in_kind_image_urls;type:jsonb" json:"donation_in_kind_image_urls,omitempty"`

	DonationInKindReceivingLocation string `gorm:"column:donation_in_kind_receiving_location;type:varchar(200)" json:"donation_in_kind_receiving_location"`
	DonationInKindStorageLocation   string `gorm:"column:donation_in_kind_storage_location;type:varchar(200)" json:"donation_in_kind_storage_location"`

	// PENDING | RECEIVED | DISTRIBUTED
	DonationInKindDistributionStatus string `gorm:"column:donation_in_kind_distribution_status;type:varchar(20);not null;default:'PENDING'" json:"donation_in_kind_distribution_status"`

	Donor *donorModel.Donor `gorm:"foreignKey:DonationInKindDonorID;references:DonorID" json:"donor,omitempty"`

	// created_at đồng thời là mốc thống kê của tài trợ hiện vật
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (DonationInKind) TableName() string {
	return "donations_in_kind"
}
