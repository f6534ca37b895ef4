package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cashModel "quanlytaitro_backend/internals/features/donations/cash/model"
	inKindModel "quanlytaitro_backend/internals/features/donations/inkind/model"
	volunteerModel "quanlytaitro_backend/internals/features/donations/volunteer/model"
	donorModel "quanlytaitro_backend/internals/features/donors/model"
)

func TestBuildPDFProducesDocument(t *testing.T) {
	out, err := BuildPDF(ReportData{}, DateRange{})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestBuildPDFWithManyRows(t *testing.T) {
	donor := donorModel.Donor{DonorFullName: "Nguyen Van An"}
	var cash []cashModel.DonationCash
	for i := 0; i < 50; i++ {
		cash = append(cash, cashModel.DonationCash{
			DonationCashAmount:        1_000_000,
			DonationCashPaymentMethod: "CASH",
			DonationCashReceivedDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local).AddDate(0, 0, i),
			Donor:                     &donor,
		})
	}

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	out, err := BuildPDF(ReportData{Cash: cash}, DateRange{From: &from})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestCapRowsLimitsTables(t *testing.T) {
	rows := make([][]string, 50)
	assert.Len(t, capRows(rows), pdfRowCap)

	short := make([][]string, 3)
	assert.Len(t, capRows(short), 3)
}

func TestReportTotalsSumsAllKinds(t *testing.T) {
	data := ReportData{
		Cash: []cashModel.DonationCash{
			{DonationCashAmount: 50_000_000},
			{DonationCashAmount: 10_000_000},
		},
		InKind: []inKindModel.DonationInKind{
			{DonationInKindEstimatedValue: 100_000_000},
		},
		Volunteers: []volunteerModel.DonationVolunteer{
			{DonationVolunteerTotalValue: 20_000_000},
		},
	}

	cash, inKind, volunteer := reportTotals(data)
	assert.Equal(t, float64(60_000_000), cash)
	assert.Equal(t, float64(100_000_000), inKind)
	assert.Equal(t, float64(20_000_000), volunteer)

	// TONG CONG là tổng đúng của ba loại
	assert.Equal(t, float64(180_000_000), cash+inKind+volunteer)
}

func TestMoneyAscii(t *testing.T) {
	assert.Equal(t, "0 VND", moneyAscii(0))
	assert.Equal(t, "1.000 VND", moneyAscii(1000))
	assert.Equal(t, "50.000.000 VND", moneyAscii(50_000_000))
	assert.Equal(t, "-1.234.567 VND", moneyAscii(-1_234_567))
}
