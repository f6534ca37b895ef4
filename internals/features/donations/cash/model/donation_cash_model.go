package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	donorModel "quanlytaitro_backend/internals/features/donors/model"
)

type DonationCash struct {
	DonationCashID uuid.UUID `gorm:"column:donation_cash_id;type:uuid;default:gen_random_uuid();primaryKey" json:"donation_cash_id"`

	DonationCashDonorID uuid.UUID `gorm:"column:donation_cash_donor_id;type:uuid;not null;index" json:"donation_cash_donor_id"`

	DonationCashAmount   float64 `gorm:"column:donation_cash_amount;type:numeric(18,2);not null;check:donation_cash_amount > 0" json:"donation_cash_amount"`
	DonationCashCurrency string  `gorm:"column:donation_cash_currency;type:varchar(10);not null;default:'VND'" json:"donation_cash_currency"`

	// CASH | BANK_TRANSFER | E_WALLET
	DonationCashPaymentMethod string `gorm:"column:donation_cash_payment_method;type:varchar(30);not null" json:"donation_cash_payment_method"`

	// Ngày nhận — mốc thời gian dùng cho thống kê tiền mặt
	DonationCashReceivedDate time.Time `gorm:"column:donation_cash_received_date;not null;index" json:"donation_cash_received_date"`

	DonationCashPurpose    string  `gorm:"column:donation_cash_purpose;type:text" json:"donation_cash_purpose"`
	DonationCashReceiptURL *string `gorm:"column:donation_cash_receipt_url;type:text" json:"donation_cash_receipt_url,omitempty"`

	// COMMITTED | RECEIVED | IN_USE | REPORTED
	DonationCashStatus string `gorm:"column:donation_cash_status;type:varchar(20);not null;default:'RECEIVED'" json:"donation_cash_status"`

	Donor *donorModel.Donor `gorm:"foreignKey:DonationCashDonorID;references:DonorID" json:"donor,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (DonationCash) TableName() string {
	return "donations_cash"
}
