package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	cashModel "quanlytaitro_backend/internals/features/donations/cash/model"
	donorModel "quanlytaitro_backend/internals/features/donors/model"
)

func strPtr(s string) *string { return &s }

func TestRenderAllTokens(t *testing.T) {
	donor := donorModel.Donor{
		DonorFullName: "Nguyễn Văn An",
		DonorTier:     "VIP",
		DonorEmail:    strPtr("an@example.com"),
		DonorPhone:    strPtr("0901234567"),
	}
	lastCash := cashModel.DonationCash{
		DonationCashAmount:       50_000_000,
		DonationCashReceivedDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local),
	}

	got := Render(
		"Kính gửi {tên} ({hạng}, {email}, {phone}): cảm ơn khoản {số_tiền} ngày {ngày}.",
		&donor, &lastCash,
	)
	assert.Equal(t,
		"Kính gửi Nguyễn Văn An (VIP, an@example.com, 0901234567): cảm ơn khoản 50.000.000 ₫ ngày 15/01/2024.",
		got,
	)
}

func TestRenderMissingDataBecomesEmpty(t *testing.T) {
	donor := donorModel.Donor{DonorFullName: "Công ty TNHH XYZ", DonorTier: "REGULAR"}

	got := Render("{tên}|{email}|{phone}|{số_tiền}|{ngày}", &donor, nil)
	assert.Equal(t, "Công ty TNHH XYZ||||", got)
}

func TestRenderReplacesEveryOccurrence(t *testing.T) {
	donor := donorModel.Donor{DonorFullName: "An"}

	got := Render("{tên} {tên} {tên}", &donor, nil)
	assert.Equal(t, "An An An", got)
}

func TestRenderLeavesUnknownTokens(t *testing.T) {
	donor := donorModel.Donor{DonorFullName: "An"}

	// token ngoài bộ từ vựng giữ nguyên
	got := Render("{tên} {mục_đích}", &donor, nil)
	assert.Equal(t, "An {mục_đích}", got)
}
