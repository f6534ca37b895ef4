package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"quanlytaitro_backend/internals/features/donations/inkind/model"
)

type CreateDonationInKindRequest struct {
	DonationInKindDonorID        uuid.UUID  `json:"donation_in_kind_donor_id" validate:"required"`
	DonationInKindItemName       string     `json:"donation_in_kind_item_name" validate:"required,max=200"`
	DonationInKindCategory       string     `json:"donation_in_kind_category" validate:"required,oneof=MEDICAL_EQUIPMENT MEDICINE SUPPLIES FOOD OTHER"`
	DonationInKindQuantity       int        `json:"donation_in_kind_quantity" validate:"required,gt=0"`
	DonationInKindUnit           string     `json:"donation_in_kind_unit" validate:"required,max=30"`
	DonationInKindCondition      string     `json:"donation_in_kind_condition" validate:"required,oneof=NEW USED"`
	DonationInKindExpiryDate     *time.Time `json:"donation_in_kind_expiry_date"`
	DonationInKindEstimatedValue float64    `json:"donation_in_kind_estimated_value" validate:"required,gt=0"`
	DonationInKindImageURLs      []string   `json:"donation_in_kind_image_urls"`

	DonationInKindReceivingLocation  string `json:"donation_in_kind_receiving_location" validate:"required"`
	DonationInKindStorageLocation    string `json:"donation_in_kind_storage_location" validate:"required"`
	DonationInKindDistributionStatus string `json:"donation_in_kind_distribution_status" validate:"required,oneof=PENDING RECEIVED DISTRIBUTED"`
}

func (r *CreateDonationInKindRequest) ToModel() model.DonationInKind {
	m := model.DonationInKind{
		DonationInKindDonorID:            r.DonationInKindDonorID,
		DonationInKindItemName:           r.DonationInKindItemName,
		DonationInKindCategory:           r.DonationInKindCategory,
		DonationInKindQuantity:           r.DonationInKindQuantity,
		DonationInKindUnit:               r.DonationInKindUnit,
		DonationInKindCondition:          r.DonationInKindCondition,
		DonationInKindExpiryDate:         r.DonationInKindExpiryDate,
		DonationInKindEstimatedValue:     r.DonationInKindEstimatedValue,
		DonationInKindReceivingLocation:  r.DonationInKindReceivingLocation,
		DonationInKindStorageLocation:    r.DonationInKindStorageLocation,
		DonationInKindDistributionStatus: r.DonationInKindDistributionStatus,
	}
	if len(r.DonationInKindImageURLs) > 0 {
		if raw, err := json.Marshal(r.DonationInKindImageURLs); err == nil {
			m.DonationInKindImageURLs = datatypes.JSON(raw)
		}
	}
	return m
}

type UpdateDonationInKindRequest struct {
	DonationInKindItemName       *string    `json:"donation_in_kind_item_name" validate:"omitempty,max=200"`
	DonationInKindCategory       *string    `json:"donation_in_kind_category" validate:"omitempty,oneof=MEDICAL_EQUIPMENT MEDICINE SUPPLIES FOOD OTHER"`
	DonationInKindQuantity       *int       `json:"donation_in_kind_quantity" validate:"omitempty,gt=0"`
	DonationInKindUnit           *string    `json:"donation_in_kind_unit" validate:"omitempty,max=30"`
	DonationInKindCondition      *string    `json:"donation_in_kind_condition" validate:"omitempty,oneof=NEW USED"`
	DonationInKindExpiryDate     *time.Time `json:"donation_in_kind_expiry_date"`
	DonationInKindEstimatedValue *float64   `json:"donation_in_kind_estimated_value" validate:"omitempty,gt=0"`
	DonationInKindImageURLs      []string   `json:"donation_in_kind_image_urls"`

	DonationInKindReceivingLocation  *string `json:"donation_in_kind_receiving_location"`
	DonationInKindStorageLocation    *string `json:"donation_in_kind_storage_location"`
	DonationInKindDistributionStatus *string `json:"donation_in_kind_distribution_status" validate:"omitempty,oneof=PENDING RECEIVED DISTRIBUTED"`
}

func (r *UpdateDonationInKindRequest) ApplyTo(d *model.DonationInKind) {
	if r.DonationInKindItemName != nil {
		d.DonationInKindItemName = *r.DonationInKindItemName
	}
	if r.DonationInKindCategory != nil {
		d.DonationInKindCategory = *r.DonationInKindCategory
	}
	if r.DonationInKindQuantity != nil {
		d.DonationInKindQuantity = *r.DonationInKindQuantity
	}
	if r.DonationInKindUnit != nil {
		d.DonationInKindUnit = *r.DonationInKindUnit
	}
	if r.DonationInKindCondition != nil {
		d.DonationInKindCondition = *r.DonationInKindCondition
	}
	if r.DonationInKindExpiryDate != nil {
		d.DonationInKindExpiryDate = r.DonationInKindExpiryDate
	}
	if r.DonationInKindEstimatedValue != nil {
		d.DonationInKindEstimatedValue = *r.DonationInKindEstimatedValue
	}
	if r.DonationInKindImageURLs != nil {
		if raw, err := json.Marshal(r.DonationInKindImageURLs); err == nil {
			d.DonationInKindImageURLs = datatypes.JSON(raw)
		}
	}
	if r.DonationInKindReceivingLocation != nil {
		d.DonationInKindReceivingLocation = *r.DonationInKindReceivingLocation
	}
	if r.DonationInKindStorageLocation != nil {
		d.DonationInKindStorageLocation = *r.DonationInKindStorageLocation
	}
	if r.DonationInKindDistributionStatus != nil {
		d.DonationInKindDistributionStatus = *r.DonationInKindDistributionStatus
	}
}
