package service

import "quanlytaitro_backend/internals/constants"

// kindSpec mô tả một loại tài trợ ở mức bảng: cột giá trị, cột ngày
// dùng để lọc khoảng thời gian, và điều kiện phụ khi cộng tiền.
//
// Mỗi loại có "ngày nghiệp vụ" riêng: tiền mặt tính theo ngày nhận,
// hiện vật theo ngày ghi nhận, tình nguyện theo ngày bắt đầu.
type kindSpec struct {
	Key      string
	Label    string
	Table    string
	ValueCol string
	DateCol  string
	DonorCol string
	SumExtra string // điều kiện thêm vào SUM, rỗng nếu không có
}

var (
	cashKind = kindSpec{
		Key:      "cash",
		Label:    constants.DonationKindCashLabel,
		Table:    "donations_cash",
		ValueCol: "donation_cash_amount",
		DateCol:  "donation_cash_received_date",
		DonorCol: "donation_cash_donor_id",
		// tổng tiền chỉ cộng VND, số lượt vẫn đếm mọi loại tiền
		SumExtra: "donation_cash_currency = '" + constants.SettlementCurrency + "'",
	}

	inKindKind = kindSpec{
		Key:      "inKind",
		Label:    constants.DonationKindInKindLabel,
		Table:    "donations_in_kind",
		ValueCol: "donation_in_kind_estimated_value",
		DateCol:  "created_at",
		DonorCol: "donation_in_kind_donor_id",
	}

	volunteerKind = kindSpec{
		Key:      "volunteer",
		Label:    constants.DonationKindVolunteerLabel,
		Table:    "donations_volunteer",
		ValueCol: "donation_volunteer_total_value",
		DateCol:  "donation_volunteer_start_date",
		DonorCol: "donation_volunteer_donor_id",
	}

	allKinds = []kindSpec{cashKind, inKindKind, volunteerKind}
)
