package seeds

import (
	"errors"
	"log"
	"time"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	cashModel "quanlytaitro_backend/internals/features/donations/cash/model"
	inKindModel "quanlytaitro_backend/internals/features/donations/inkind/model"
	volunteerModel "quanlytaitro_backend/internals/features/donations/volunteer/model"
	donorModel "quanlytaitro_backend/internals/features/donors/model"
	emailModel "quanlytaitro_backend/internals/features/emails/model"
	interactionModel "quanlytaitro_backend/internals/features/interactions/model"
	reminderModel "quanlytaitro_backend/internals/features/reminders/model"
	userModel "quanlytaitro_backend/internals/features/users/user/model"
)

// Run tạo admin + dữ liệu mẫu. Idempotent: chạy lại không nhân đôi,
// mốc là email admin.
func Run(db *gorm.DB) error {
	var existing userModel.User
	err := db.First(&existing, "user_email = ?", "admin@hospital.com").Error
	if err == nil {
		log.Println("[INFO] Seed đã chạy trước đó, bỏ qua")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	log.Println("🌱 Seeding database...")

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := userModel.User{
		UserName:     "Admin User",
		UserEmail:    "admin@hospital.com",
		UserPassword: string(hashed),
		UserRole:     "ADMIN",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	birthday := date(1980, 5, 15)
	firstDonation := date(2023, 1, 10)
	donor1 := donorModel.Donor{
		DonorFullName:          "Nguyễn Văn An",
		DonorEmail:             strPtr("nguyenvanan@example.com"),
		DonorPhone:             strPtr("0901234567"),
		DonorAddress:           strPtr("123 Lê Lợi, Q1, TP.HCM"),
		DonorType:              "INDIVIDUAL",
		DonorTier:              "VIP",
		DonorOccupation:        strPtr("Doanh nhân"),
		DonorCompany:           strPtr("ABC Corp"),
		DonorPosition:          strPtr("CEO"),
		DonorBirthday:          &birthday,
		DonorFirstDonationDate: &firstDonation,
		DonorPersonalInterests: strPtr("Y tế, giáo dục"),
		DonorAreasOfInterest:   pq.StringArray{"Thiết bị y tế", "Hỗ trợ bệnh nhân nghèo"},
		DonorNotes:             strPtr("Nhà tài trợ VIP, rất quan tâm đến hoạt động từ thiện"),
		DonorManagerID:         &admin.UserID,
	}
	if err := db.Create(&donor1).Error; err != nil {
		return err
	}

	firstDonation2 := date(2023, 3, 20)
	donor2 := donorModel.Donor{
		DonorFullName:          "Công ty TNHH XYZ",
		DonorEmail:             strPtr("contact@xyz.com"),
		DonorPhone:             strPtr("0287654321"),
		DonorAddress:           strPtr("456 Nguyễn Huệ, Q1, TP.HCM"),
		DonorType:              "COMPANY",
		DonorTier:              "REGULAR",
		DonorCompany:           strPtr("XYZ Limited"),
		DonorFirstDonationDate: &firstDonation2,
		DonorAreasOfInterest:   pq.StringArray{"Thuốc men", "Vật tư y tế"},
		DonorNotes:             strPtr("Công ty dược phẩm, thường xuyên tài trợ thuốc"),
		DonorManagerID:         &admin.UserID,
	}
	if err := db.Create(&donor2).Error; err != nil {
		return err
	}

	if err := db.Create(&cashModel.DonationCash{
		DonationCashDonorID:       donor1.DonorID,
		DonationCashAmount:        50_000_000,
		DonationCashCurrency:      "VND",
		DonationCashPaymentMethod: "BANK_TRANSFER",
		DonationCashReceivedDate:  date(2024, 1, 15),
		DonationCashPurpose:       "Hỗ trợ mua thiết bị y tế cho khoa Nhi",
		DonationCashStatus:        "RECEIVED",
	}).Error; err != nil {
		return err
	}

	if err := db.Create(&inKindModel.DonationInKind{
		DonationInKindDonorID:            donor2.DonorID,
		DonationInKindItemName:           "Máy thở hô hấp",
		DonationInKindCategory:           "MEDICAL_EQUIPMENT",
		DonationInKindQuantity:           5,
		DonationInKindUnit:               "cái",
		DonationInKindCondition:          "NEW",
		DonationInKindEstimatedValue:     100_000_000,
		DonationInKindReceivingLocation:  "Kho tổng",
		DonationInKindStorageLocation:    "Kho B - Tầng 2",
		DonationInKindDistributionStatus: "RECEIVED",
	}).Error; err != nil {
		return err
	}

	rating := 5
	if err := db.Create(&volunteerModel.DonationVolunteer{
		DonationVolunteerDonorID:     donor1.DonorID,
		DonationVolunteerWorkType:    "MEDICAL",
		DonationVolunteerSkills:      "Bác sĩ tim mạch, 15 năm kinh nghiệm",
		DonationVolunteerStartDate:   date(2024, 2, 1),
		DonationVolunteerEndDate:     date(2024, 2, 5),
		DonationVolunteerHours:       40,
		DonationVolunteerHourlyRate:  500_000,
		DonationVolunteerRating:      &rating,
		DonationVolunteerReviewNotes: strPtr("Rất tận tâm, nhiệt tình hỗ trợ bệnh nhân"),
	}).Error; err != nil {
		return err
	}

	if err := db.Create(&interactionModel.Interaction{
		InteractionDonorID: donor1.DonorID,
		InteractionType:    "CALL",
		InteractionDate:    date(2024, 3, 10),
		InteractionSubject: strPtr("Gọi điện cảm ơn"),
		InteractionNotes:   strPtr("Gọi điện cảm ơn và thông báo về chương trình mới"),
	}).Error; err != nil {
		return err
	}

	if err := db.Create(&emailModel.EmailTemplate{
		EmailTemplateName:    "Email cảm ơn tài trợ tiền mặt",
		EmailTemplateSubject: "Cảm ơn sự đóng góp của {tên}",
		EmailTemplateBody: "Kính gửi {tên},\n\n" +
			"Bệnh viện ABC xin chân thành cảm ơn sự đóng góp quý báu của Quý vị/Công ty với số tiền {số_tiền} vào ngày {ngày}.\n\n" +
			"Sự hỗ trợ của Quý vị/Công ty góp phần nâng cao chất lượng chăm sóc sức khỏe cho người dân.\n\n" +
			"Một lần nữa, xin chân thành cảm ơn!\n\n" +
			"Trân trọng,\nBan Quản lý Bệnh viện ABC",
		EmailTemplateType: "THANK_YOU",
	}).Error; err != nil {
		return err
	}

	if err := db.Create(&reminderModel.Reminder{
		ReminderDonorID:     &donor1.DonorID,
		ReminderType:        "BIRTHDAY",
		ReminderTitle:       "Sinh nhật Nguyễn Văn An",
		ReminderDescription: strPtr("Gửi thiệp chúc mừng sinh nhật"),
		ReminderDueDate:     date(2024, 5, 12),
	}).Error; err != nil {
		return err
	}

	log.Println("✅ Seed hoàn tất")
	return nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func strPtr(s string) *string { return &s }
