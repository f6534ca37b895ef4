package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quanlytaitro_backend/internals/features/emails/dto"
	"quanlytaitro_backend/internals/features/emails/model"
	helper "quanlytaitro_backend/internals/helpers"
)

type EmailTemplateController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEmailTemplateController(db *gorm.DB) *EmailTemplateController {
	return &EmailTemplateController{DB: db, Validate: validator.New()}
}

// 🟢 GET /email-templates — lọc type tuỳ chọn
func (ctrl *EmailTemplateController) GetTemplates(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, helper.DefaultOpts)

	q := ctrl.DB.Model(&model.EmailTemplate{})
	if tType := c.Query("type"); tType != "" {
		q = q.Where("email_template_type = ?", tType)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] Đếm mẫu email:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	var templates []model.EmailTemplate
	if err := q.
		Order("created_at DESC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&templates).Error; err != nil {
		log.Println("[ERROR] Lấy mẫu email:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "OK", fiber.Map{
		"templates":  templates,
		"pagination": helper.BuildMeta(total, p),
	})
}

// 🟢 GET /email-templates/:id
func (ctrl *EmailTemplateController) GetTemplate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id không hợp lệ")
	}

	var template model.EmailTemplate
	if err := ctrl.DB.First(&template, "email_template_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy mẫu email")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "OK", template)
}

// 🟢 POST /email-templates
func (ctrl *EmailTemplateController) CreateTemplate(c *fiber.Ctx) error {
	var body dto.CreateEmailTemplateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload không hợp lệ")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	template := body.ToModel()
	if err := ctrl.DB.Create(&template).Error; err != nil {
		log.Println("[ERROR] Tạo mẫu email:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Đã tạo mẫu email", template)
}

// 🟢 PUT /email-templates/:id
func (ctrl *EmailTemplateController) UpdateTemplate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id không hợp lệ")
	}

	var body dto.UpdateEmailTemplateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload không hợp lệ")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var template model.EmailTemplate
	if err := ctrl.DB.First(&template, "email_template_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy mẫu email")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	body.ApplyTo(&template)
	if err := ctrl.DB.Save(&template).Error; err != nil {
		log.Println("[ERROR] Cập nhật mẫu email:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "Đã cập nhật mẫu email", template)
}

// 🟢 DELETE /email-templates/:id — soft delete
func (ctrl *EmailTemplateController) DeleteTemplate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id không hợp lệ")
	}

	res := ctrl.DB.Delete(&model.EmailTemplate{}, "email_template_id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] Xoá mẫu email:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy mẫu email")
	}

	return helper.Success(c, "Đã xoá mẫu email", nil)
}
