package service

import (
	"strings"

	cashModel "quanlytaitro_backend/internals/features/donations/cash/model"
	donorModel "quanlytaitro_backend/internals/features/donors/model"
	helper "quanlytaitro_backend/internals/helpers"
)

// Render thay token trong mẫu email bằng dữ liệu nhà tài trợ.
// Token: {tên} {hạng} {email} {phone} {số_tiền} {ngày}.
// Thiếu dữ liệu thì thay bằng chuỗi rỗng, không giữ nguyên token.
func Render(text string, donor *donorModel.Donor, lastCash *cashModel.DonationCash) string {
	amount, date := "", ""
	if lastCash != nil {
		amount = helper.FormatVND(lastCash.DonationCashAmount)
		date = helper.FormatDate(lastCash.DonationCashReceivedDate)
	}

	email, phone := "", ""
	if donor.DonorEmail != nil {
		email = *donor.DonorEmail
	}
	if donor.DonorPhone != nil {
		phone = *donor.DonorPhone
	}

	return strings.NewReplacer(
		"{tên}", donor.DonorFullName,
		"{hạng}", donor.DonorTier,
		"{email}", email,
		"{phone}", phone,
		"{số_tiền}", amount,
		"{ngày}", date,
	).Replace(text)
}
