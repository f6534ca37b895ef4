package service

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"quanlytaitro_backend/internals/constants"
	cashModel "quanlytaitro_backend/internals/features/donations/cash/model"
	inKindModel "quanlytaitro_backend/internals/features/donations/inkind/model"
	volunteerModel "quanlytaitro_backend/internals/features/donations/volunteer/model"
	donorModel "quanlytaitro_backend/internals/features/donors/model"
	helper "quanlytaitro_backend/internals/helpers"
)

// Tên sheet cố định theo mẫu báo cáo của phòng công tác xã hội.
const (
	SheetDonors    = "Nhà tài trợ"
	SheetCash      = "Tài trợ tiền mặt"
	SheetInKind    = "Tài trợ hiện vật"
	SheetVolunteer = "Công tác tình nguyện"

	emptySheetNotice = "Không có dữ liệu"
)

// ReportData gom dữ liệu bốn sheet. Danh sách nhà tài trợ không lọc
// theo thời gian, ba danh sách tài trợ đã lọc theo ngày nghiệp vụ.
type ReportData struct {
	Donors     []donorModel.Donor
	Cash       []cashModel.DonationCash
	InKind     []inKindModel.DonationInKind
	Volunteers []volunteerModel.DonationVolunteer
}

// BuildWorkbook dựng file Excel 4 sheet. Sheet rỗng vẫn được tạo với
// một dòng thông báo thay vì bỏ trống. Các ô enum in nhãn tiếng Việt.
func BuildWorkbook(data ReportData) (*excelize.File, error) {
	f := excelize.NewFile()

	donorRows := make([][]interface{}, 0, len(data.Donors))
	for _, d := range data.Donors {
		donorRows = append(donorRows, []interface{}{
			d.DonorFullName,
			constants.Label(constants.DonorTypeLabels, d.DonorType),
			constants.Label(constants.DonorTierLabels, d.DonorTier),
			strOrEmpty(d.DonorEmail),
			strOrEmpty(d.DonorPhone),
			strOrEmpty(d.DonorAddress),
			helper.FormatDate(d.CreatedAt),
		})
	}
	if err := writeSheet(f, SheetDonors,
		[]interface{}{"Họ tên", "Loại", "Cấp độ", "Email", "Số điện thoại", "Địa chỉ", "Ngày tạo"},
		donorRows); err != nil {
		return nil, err
	}

	cashRows := make([][]interface{}, 0, len(data.Cash))
	for _, d := range data.Cash {
		cashRows = append(cashRows, []interface{}{
			donorName(d.Donor),
			d.DonationCashAmount,
			d.DonationCashCurrency,
			constants.Label(constants.PaymentMethodLabels, d.DonationCashPaymentMethod),
			helper.FormatDate(d.DonationCashReceivedDate),
			d.DonationCashPurpose,
			constants.Label(constants.CashStatusLabels, d.DonationCashStatus),
		})
	}
	if err := writeSheet(f, SheetCash,
		[]interface{}{"Nhà tài trợ", "Số tiền", "Loại tiền", "Phương thức", "Ngày nhận", "Mục đích", "Trạng thái"},
		cashRows); err != nil {
		return nil, err
	}

	inKindRows := make([][]interface{}, 0, len(data.InKind))
	for _, d := range data.InKind {
		inKindRows = append(inKindRows, []interface{}{
			donorName(d.Donor),
			d.DonationInKindItemName,
			constants.Label(constants.InKindCategoryLabels, d.DonationInKindCategory),
			d.DonationInKindQuantity,
			d.DonationInKindUnit,
			d.DonationInKindEstimatedValue,
			helper.FormatDate(d.CreatedAt),
			constants.Label(constants.DistributionStatusLabels, d.DonationInKindDistributionStatus),
		})
	}
	if err := writeSheet(f, SheetInKind,
		[]interface{}{"Nhà tài trợ", "Vật phẩm", "Danh mục", "Số lượng", "Đơn vị", "Giá trị ước tính", "Ngày nhận", "Trạng thái"},
		inKindRows); err != nil {
		return nil, err
	}

	volunteerRows := make([][]interface{}, 0, len(data.Volunteers))
	for _, d := range data.Volunteers {
		var rating interface{} = ""
		if d.DonationVolunteerRating != nil {
			rating = *d.DonationVolunteerRating
		}
		volunteerRows = append(volunteerRows, []interface{}{
			donorName(d.Donor),
			constants.Label(constants.WorkTypeLabels, d.DonationVolunteerWorkType),
			helper.FormatDate(d.DonationVolunteerStartDate),
			helper.FormatDate(d.DonationVolunteerEndDate),
			d.DonationVolunteerHours,
			d.DonationVolunteerHourlyRate,
			d.DonationVolunteerTotalValue,
			rating,
		})
	}
	if err := writeSheet(f, SheetVolunteer,
		[]interface{}{"Tình nguyện viên", "Loại công việc", "Ngày bắt đầu", "Ngày kết thúc", "Số giờ", "Giá trị/giờ", "Tổng giá trị", "Đánh giá"},
		volunteerRows); err != nil {
		return nil, err
	}

	// Sheet1 mặc định của excelize không nằm trong báo cáo
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	return f, nil
}

func writeSheet(f *excelize.File, name string, headers []interface{}, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	if len(rows) == 0 {
		if err := f.SetSheetRow(name, "A1", &[]interface{}{"Thông báo"}); err != nil {
			return err
		}
		return f.SetSheetRow(name, "A2", &[]interface{}{emptySheetNotice})
	}
	if err := f.SetSheetRow(name, "A1", &headers); err != nil {
		return err
	}
	for i := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(name, cell, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}

func donorName(d *donorModel.Donor) string {
	if d == nil {
		return ""
	}
	return d.DonorFullName
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
