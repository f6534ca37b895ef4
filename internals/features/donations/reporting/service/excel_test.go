package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cashModel "quanlytaitro_backend/internals/features/donations/cash/model"
	donorModel "quanlytaitro_backend/internals/features/donors/model"
)

func TestBuildWorkbookSheets(t *testing.T) {
	f, err := BuildWorkbook(ReportData{})
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t,
		[]string{SheetDonors, SheetCash, SheetInKind, SheetVolunteer},
		f.GetSheetList(),
	)
}

func TestBuildWorkbookEmptySheetPlaceholder(t *testing.T) {
	f, err := BuildWorkbook(ReportData{})
	require.NoError(t, err)
	defer f.Close()

	for _, sheet := range []string{SheetDonors, SheetCash, SheetInKind, SheetVolunteer} {
		header, err := f.GetCellValue(sheet, "A1")
		require.NoError(t, err)
		assert.Equal(t, "Thông báo", header, sheet)

		notice, err := f.GetCellValue(sheet, "A2")
		require.NoError(t, err)
		assert.Equal(t, "Không có dữ liệu", notice, sheet)
	}
}

func TestBuildWorkbookDataRows(t *testing.T) {
	donor := donorModel.Donor{
		DonorFullName: "Nguyễn Văn An",
		DonorType:     "INDIVIDUAL",
		DonorTier:     "VIP",
		CreatedAt:     time.Date(2023, 1, 10, 0, 0, 0, 0, time.Local),
	}
	data := ReportData{
		Donors: []donorModel.Donor{donor},
		Cash: []cashModel.DonationCash{{
			DonationCashAmount:        50_000_000,
			DonationCashCurrency:      "VND",
			DonationCashPaymentMethod: "BANK_TRANSFER",
			DonationCashReceivedDate:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local),
			DonationCashStatus:        "RECEIVED",
			Donor:                     &donor,
		}},
	}

	f, err := BuildWorkbook(data)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(SheetDonors, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Họ tên", header)

	name, err := f.GetCellValue(SheetDonors, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Nguyễn Văn An", name)

	// enum in nhãn tiếng Việt, không in giá trị thô
	donorType, err := f.GetCellValue(SheetDonors, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Cá nhân", donorType)

	created, err := f.GetCellValue(SheetDonors, "G2")
	require.NoError(t, err)
	assert.Equal(t, "10/01/2023", created)

	cashDonor, err := f.GetCellValue(SheetCash, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Nguyễn Văn An", cashDonor)

	method, err := f.GetCellValue(SheetCash, "D2")
	require.NoError(t, err)
	assert.Equal(t, "Chuyển khoản", method)

	received, err := f.GetCellValue(SheetCash, "E2")
	require.NoError(t, err)
	assert.Equal(t, "15/01/2024", received)

	status, err := f.GetCellValue(SheetCash, "G2")
	require.NoError(t, err)
	assert.Equal(t, "Đã nhận", status)
}
