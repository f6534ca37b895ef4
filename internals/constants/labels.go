package constants

// Nhãn tiếng Việt cho các enum, dùng cho dashboard và file export.

const SettlementCurrency = "VND"

var DonorTypeLabels = map[string]string{
	"INDIVIDUAL":   "Cá nhân",
	"COMPANY":      "Doanh nghiệp",
	"ORGANIZATION": "Tổ chức",
	"COMMUNITY":    "Nhóm/Cộng đồng",
}

var DonorTierLabels = map[string]string{
	"VIP":       "VIP",
	"REGULAR":   "Thường xuyên",
	"NEW":       "Mới",
	"POTENTIAL": "Tiềm năng",
}

var PaymentMethodLabels = map[string]string{
	"CASH":          "Tiền mặt",
	"BANK_TRANSFER": "Chuyển khoản",
	"E_WALLET":      "Ví điện tử",
}

var CashStatusLabels = map[string]string{
	"COMMITTED": "Cam kết",
	"RECEIVED":  "Đã nhận",
	"IN_USE":    "Đang sử dụng",
	"REPORTED":  "Đã báo cáo",
}

var InKindCategoryLabels = map[string]string{
	"MEDICAL_EQUIPMENT": "Thiết bị y tế",
	"MEDICINE":          "Thuốc",
	"SUPPLIES":          "Đồ dùng",
	"FOOD":              "Thực phẩm",
	"OTHER":             "Khác",
}

var DistributionStatusLabels = map[string]string{
	"PENDING":     "Chờ nhận",
	"RECEIVED":    "Đã nhận",
	"DISTRIBUTED": "Đã phân phối",
}

var WorkTypeLabels = map[string]string{
	"MEDICAL":        "Y tế",
	"ADMINISTRATIVE": "Hành chính",
	"TRANSPORTATION": "Vận chuyển",
	"CARE":           "Chăm sóc",
	"OTHER":          "Khác",
}

// Nhãn loại tài trợ cho biểu đồ tròn trên dashboard
const (
	DonationKindCashLabel      = "Tiền mặt"
	DonationKindInKindLabel    = "Hiện vật"
	DonationKindVolunteerLabel = "Tình nguyện"
)

func Label(m map[string]string, key string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return key
}
