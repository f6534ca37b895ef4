package service

import (
	"bytes"
	"strconv"

	"github.com/go-pdf/fpdf"

	"quanlytaitro_backend/internals/constants"
	helper "quanlytaitro_backend/internals/helpers"
)

const (
	pdfRowCap    = 20  // mỗi bảng in tối đa 20 dòng
	pdfPageBreak = 250 // sang trang mới khi y vượt ngưỡng
)

// BuildPDF dựng báo cáo tóm tắt: khối tổng quan và ba bảng chi tiết.
// Font lõi của PDF không có dấu tiếng Việt nên tiêu đề dùng chữ không dấu,
// dữ liệu động được dịch qua bảng mã cp1252 tới đâu hay tới đó.
func BuildPDF(data ReportData, rng DateRange) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "BAO CAO TAI TRO BENH VIEN", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	from := "Tat ca"
	to := "Den nay"
	if rng.From != nil {
		from = helper.FormatDate(*rng.From)
	}
	if rng.To != nil {
		to = helper.FormatDate(*rng.To)
	}
	pdf.CellFormat(0, 6, from+" - "+to, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	totalCash, totalInKind, totalVolunteer := reportTotals(data)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "TONG QUAN", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Tong tien mat: "+moneyAscii(totalCash), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Tong hien vat: "+moneyAscii(totalInKind), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Tong tinh nguyen: "+moneyAscii(totalVolunteer), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "TONG CONG: "+moneyAscii(totalCash+totalInKind+totalVolunteer), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	cashRows := make([][]string, 0, len(data.Cash))
	for _, d := range data.Cash {
		cashRows = append(cashRows, []string{
			tr(donorName(d.Donor)),
			moneyAscii(d.DonationCashAmount),
			tr(constants.Label(constants.PaymentMethodLabels, d.DonationCashPaymentMethod)),
			helper.FormatDate(d.DonationCashReceivedDate),
		})
	}
	renderTable(pdf, "TAI TRO TIEN MAT",
		[]string{"Nha tai tro", "So tien", "Phuong thuc", "Ngay nhan"},
		[]float64{60, 45, 45, 32}, cashRows)

	inKindRows := make([][]string, 0, len(data.InKind))
	for _, d := range data.InKind {
		inKindRows = append(inKindRows, []string{
			tr(donorName(d.Donor)),
			tr(d.DonationInKindItemName),
			tr(strconv.Itoa(d.DonationInKindQuantity) + " " + d.DonationInKindUnit),
			moneyAscii(d.DonationInKindEstimatedValue),
		})
	}
	renderTable(pdf, "TAI TRO HIEN VAT",
		[]string{"Nha tai tro", "Vat pham", "So luong", "Gia tri"},
		[]float64{60, 60, 30, 32}, inKindRows)

	volunteerRows := make([][]string, 0, len(data.Volunteers))
	for _, d := range data.Volunteers {
		volunteerRows = append(volunteerRows, []string{
			tr(donorName(d.Donor)),
			tr(constants.Label(constants.WorkTypeLabels, d.DonationVolunteerWorkType)),
			helper.FormatDate(d.DonationVolunteerStartDate),
			moneyAscii(d.DonationVolunteerTotalValue),
		})
	}
	renderTable(pdf, "CONG TAC TINH NGUYEN",
		[]string{"Tinh nguyen vien", "Loai cong viec", "Ngay bat dau", "Tong gia tri"},
		[]float64{60, 45, 45, 32}, volunteerRows)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderTable(pdf *fpdf.Fpdf, title string, headers []string, widths []float64, rows [][]string) {
	if len(rows) == 0 {
		return
	}
	if pdf.GetY() > pdfPageBreak {
		pdf.AddPage()
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(66, 139, 202)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 6, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range capRows(rows) {
		if pdf.GetY() > pdfPageBreak {
			pdf.AddPage()
		}
		for i, cell := range row {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(6)
}

// reportTotals cộng tổng ba loại tài trợ cho khối TONG QUAN.
// TONG CONG luôn bằng tổng của ba con số này.
func reportTotals(data ReportData) (cash, inKind, volunteer float64) {
	for _, d := range data.Cash {
		cash += d.DonationCashAmount
	}
	for _, d := range data.InKind {
		inKind += d.DonationInKindEstimatedValue
	}
	for _, d := range data.Volunteers {
		volunteer += d.DonationVolunteerTotalValue
	}
	return cash, inKind, volunteer
}

// capRows cắt bảng về tối đa pdfRowCap dòng.
func capRows(rows [][]string) [][]string {
	if len(rows) > pdfRowCap {
		return rows[:pdfRowCap]
	}
	return rows
}

// moneyAscii nhóm số kiểu vi-VN nhưng dùng hậu tố "VND" thay ký hiệu ₫.
func moneyAscii(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := strconv.FormatInt(int64(amount), 10)
	var out []byte
	for i, c := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}
	s := string(out) + " VND"
	if neg {
		s = "-" + s
	}
	return s
}
