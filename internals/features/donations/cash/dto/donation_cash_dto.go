package dto

import (
	"time"

	"github.com/google/uuid"

	"quanlytaitro_backend/internals/features/donations/cash/model"
)

type CreateDonationCashRequest struct {
	DonationCashDonorID       uuid.UUID `json:"donation_cash_donor_id" validate:"required"`
	DonationCashAmount        float64   `json:"donation_cash_amount" validate:"required,gt=0"`
	DonationCashCurrency      string    `json:"donation_cash_currency" validate:"required,oneof=VND USD EUR"`
	DonationCashPaymentMethod string    `json:"donation_cash_payment_method" validate:"required,oneof=CASH BANK_TRANSFER E_WALLET"`
	DonationCashReceivedDate  time.Time `json:"donation_cash_received_date" validate:"required"`
	DonationCashPurpose       string    `json:"donation_cash_purpose" validate:"required"`
	DonationCashReceiptURL    *string   `json:"donation_cash_receipt_url"`
	DonationCashStatus        string    `json:"donation_cash_status" validate:"required,oneof=COMMITTED RECEIVED IN_USE REPORTED"`
}

func (r *CreateDonationCashRequest) ToModel() model.DonationCash {
	return model.DonationCash{
		DonationCashDonorID:       r.DonationCashDonorID,
		DonationCashAmount:        r.DonationCashAmount,
		DonationCashCurrency:      r.DonationCashCurrency,
		DonationCashPaymentMethod: r.DonationCashPaymentMethod,
		DonationCashReceivedDate:  r.DonationCashReceivedDate,
		DonationCashPurpose:       r.DonationCashPurpose,
		DonationCashReceiptURL:    r.DonationCashReceiptURL,
		DonationCashStatus:        r.DonationCashStatus,
	}
}

type UpdateDonationCashRequest struct {
	DonationCashAmount        *float64   `json:"donation_cash_amount" validate:"omitempty,gt=0"`
	DonationCashCurrency      *string    `json:"donation_cash_currency" validate:"omitempty,oneof=VND USD EUR"`
	DonationCashPaymentMethod *string    `json:"donation_cash_payment_method" validate:"omitempty,oneof=CASH BANK_TRANSFER E_WALLET"`
	DonationCashReceivedDate  *time.Time `json:"donation_cash_received_date"`
	DonationCashPurpose       *string    `json:"donation_cash_purpose"`
	DonationCashReceiptURL    *string    `json:"donation_cash_receipt_url"`
	DonationCashStatus        *string    `json:"donation_cash_status" validate:"omitempty,oneof=COMMITTED RECEIVED IN_USE REPORTED"`
}

func (r *UpdateDonationCashRequest) ApplyTo(d *model.DonationCash) {
	if r.DonationCashAmount != nil {
		d.DonationCashAmount = *r.DonationCashAmount
	}
	if r.DonationCashCurrency != nil {
		d.DonationCashCurrency = *r.DonationCashCurrency
	}
	if r.DonationCashPaymentMethod != nil {
		d.DonationCashPaymentMethod = *r.DonationCashPaymentMethod
	}
	if r.DonationCashReceivedDate != nil {
		d.DonationCashReceivedDate = *r.DonationCashReceivedDate
	}
	if r.DonationCashPurpose != nil {
		d.DonationCashPurpose = *r.DonationCashPurpose
	}
	if r.DonationCashReceiptURL != nil {
		d.DonationCashReceiptURL = r.DonationCashReceiptURL
	}
	if r.DonationCashStatus != nil {
		d.DonationCashStatus = *r.DonationCashStatus
	}
}
