package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cashModel "quanlytaitro_backend/internals/features/donations/cash/model"
	"quanlytaitro_backend/internals/features/emails/dto"
	"quanlytaitro_backend/internals/features/emails/model"
	"quanlytaitro_backend/internals/features/emails/service"
	donorModel "quanlytaitro_backend/internals/features/donors/model"
	helper "quanlytaitro_backend/internals/helpers"
)

type SendEmailController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Mailer   *service.Mailer
}

func NewSendEmailController(db *gorm.DB, mailer *service.Mailer) *SendEmailController {
	return &SendEmailController{DB: db, Validate: validator.New(), Mailer: mailer}
}

// 🟢 POST /emails/send — gửi hàng loạt, mỗi nhà tài trợ một bản ghi log.
// Cả lô ghi trong một transaction, SES gửi sau khi commit.
func (ctrl *SendEmailController) SendEmails(c *fiber.Ctx) error {
	var body dto.SendEmailRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload không hợp lệ")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	subject, bodyText, status := ctrl.resolveContent(c, body.TemplateID, body.CustomSubject, body.CustomBody)
	if status != 0 {
		return nil // response đã ghi trong resolveContent
	}

	donors, lastCash, err := ctrl.loadDonors(body.DonorIDs)
	if err != nil {
		log.Println("[ERROR] Nạp nhà tài trợ để gửi email:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if len(donors) == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy nhà tài trợ hợp lệ")
	}

	now := time.Now()
	logs := make([]model.EmailLog, 0, len(donors))
	for i := range donors {
		d := &donors[i]
		logs = append(logs, model.EmailLog{
			EmailLogDonorID:    d.DonorID,
			EmailLogTemplateID: body.TemplateID,
			EmailLogSubject:    service.Render(subject, d, lastCash[d.DonorID]),
			EmailLogBody:       service.Render(bodyText, d, lastCash[d.DonorID]),
			EmailLogStatus:     "SENT",
			EmailLogSentAt:     &now,
		})
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&logs).Error
	}); err != nil {
		log.Println("[ERROR] Ghi email log:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	// Gửi thật sau commit, lỗi từng email không làm hỏng cả lô
	if ctrl.Mailer != nil {
		for i := range donors {
			if donors[i].DonorEmail == nil {
				continue
			}
			if err := ctrl.Mailer.Send(c.Context(), *donors[i].DonorEmail, logs[i].EmailLogSubject, logs[i].EmailLogBody); err != nil {
				log.Println("[WARN] Gửi SES thất bại:", err)
				ctrl.DB.Model(&model.EmailLog{}).
					Where("email_log_id = ?", logs[i].EmailLogID).
					Update("email_log_status", "FAILED")
			}
		}
	}

	return helper.Success(c, "Đã gửi email", fiber.Map{
		"count":  len(logs),
		"emails": logs,
	})
}

// 🟢 POST /emails/preview — render thử, không lưu
func (ctrl *SendEmailController) PreviewEmail(c *fiber.Ctx) error {
	var body dto.PreviewEmailRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload không hợp lệ")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	subject, bodyText, status := ctrl.resolveContent(c, body.TemplateID, body.CustomSubject, body.CustomBody)
	if status != 0 {
		return nil
	}

	donors, lastCash, err := ctrl.loadDonors([]uuid.UUID{body.DonorID})
	if err != nil {
		log.Println("[ERROR] Nạp nhà tài trợ để xem thử email:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if len(donors) == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy nhà tài trợ")
	}

	d := &donors[0]
	return helper.Success(c, "OK", fiber.Map{
		"subject": service.Render(subject, d, lastCash[d.DonorID]),
		"body":    service.Render(bodyText, d, lastCash[d.DonorID]),
	})
}

// resolveContent chọn nội dung: custom ưu tiên, thiếu thì lấy từ mẫu.
// Trả về status khác 0 khi đã ghi response lỗi.
func (ctrl *SendEmailController) resolveContent(c *fiber.Ctx, templateID *uuid.UUID, customSubject, customBody *string) (string, string, int) {
	subject, bodyText := "", ""
	if templateID != nil {
		var template model.EmailTemplate
		if err := ctrl.DB.First(&template, "email_template_id = ?", *templateID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				helper.Error(c, fiber.StatusNotFound, "Không tìm thấy mẫu email")
				return "", "", fiber.StatusNotFound
			}
			helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
			return "", "", fiber.StatusInternalServerError
		}
		subject = template.EmailTemplateSubject
		bodyText = template.EmailTemplateBody
	}
	if customSubject != nil && *customSubject != "" {
		subject = *customSubject
	}
	if customBody != nil && *customBody != "" {
		bodyText = *customBody
	}
	return subject, bodyText, 0
}

// loadDonors nạp nhà tài trợ còn hiệu lực kèm khoản tiền mặt gần nhất
// (mốc theo ngày nhận) cho token {số_tiền}/{ngày}.
func (ctrl *SendEmailController) loadDonors(ids []uuid.UUID) ([]donorModel.Donor, map[uuid.UUID]*cashModel.DonationCash, error) {
	var donors []donorModel.Donor
	if err := ctrl.DB.Where("donor_id IN ?", ids).Find(&donors).Error; err != nil {
		return nil, nil, err
	}

	var cash []cashModel.DonationCash
	if err := ctrl.DB.
		Where("donation_cash_donor_id IN ?", ids).
		Order("donation_cash_received_date DESC").
		Find(&cash).Error; err != nil {
		return nil, nil, err
	}

	lastCash := make(map[uuid.UUID]*cashModel.DonationCash, len(donors))
	for i := range cash {
		if _, seen := lastCash[cash[i].DonationCashDonorID]; !seen {
			lastCash[cash[i].DonationCashDonorID] = &cash[i]
		}
	}
	return donors, lastCash, nil
}
