package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quanlytaitro_backend/internals/features/interactions/dto"
	"quanlytaitro_backend/internals/features/interactions/model"
	helper "quanlytaitro_backend/internals/helpers"
)

type InteractionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewInteractionController(db *gorm.DB) *InteractionController {
	return &InteractionController{DB: db, Validate: validator.New()}
}

// 🟢 GET /interactions — phân trang + lọc donor/type
func (ctrl *InteractionController) GetInteractions(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, helper.DefaultOpts)

	q := ctrl.DB.Model(&model.Interaction{})
	if donorID := c.Query("donor_id"); donorID != "" {
		id, err := uuid.Parse(donorID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "donor_id không hợp lệ")
		}
		q = q.Where("interaction_donor_id = ?", id)
	}
	if iType := c.Query("type"); iType != "" {
		q = q.Where("interaction_type = ?", iType)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] Đếm lượt tiếp xúc:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	var interactions []model.Interaction
	if err := q.
		Preload("Donor").
		Order("interaction_date DESC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&interactions).Error; err != nil {
		log.Println("[ERROR] Lấy lượt tiếp xúc:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "OK", fiber.Map{
		"interactions": interactions,
		"pagination":   helper.BuildMeta(total, p),
	})
}

// 🟢 GET /interactions/:id
func (ctrl *InteractionController) GetInteraction(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id không hợp lệ")
	}

	var interaction model.Interaction
	if err := ctrl.DB.Preload("Donor").First(&interaction, "interaction_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy lượt tiếp xúc")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "OK", interaction)
}

// 🟢 POST /interactions
func (ctrl *InteractionController) CreateInteraction(c *fiber.Ctx) error {
	var body dto.CreateInteractionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload không hợp lệ")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	interaction := body.ToModel()
	if err := ctrl.DB.Create(&interaction).Error; err != nil {
		log.Println("[ERROR] Tạo lượt tiếp xúc:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Đã ghi nhận lượt tiếp xúc", interaction)
}

// 🟢 PUT /interactions/:id
func (ctrl *InteractionController) UpdateInteraction(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id không hợp lệ")
	}

	var body dto.UpdateInteractionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload không hợp lệ")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var interaction model.Interaction
	if err := ctrl.DB.First(&interaction, "interaction_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy lượt tiếp xúc")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	body.ApplyTo(&interaction)
	if err := ctrl.DB.Save(&interaction).Error; err != nil {
		log.Println("[ERROR] Cập nhật lượt tiếp xúc:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "Đã cập nhật lượt tiếp xúc", interaction)
}

// 🟢 DELETE /interactions/:id — soft delete
func (ctrl *InteractionController) DeleteInteraction(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id không hợp lệ")
	}

	res := ctrl.DB.Delete(&model.Interaction{}, "interaction_id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] Xoá lượt tiếp xúc:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy lượt tiếp xúc")
	}

	return helper.Success(c, "Đã xoá lượt tiếp xúc", nil)
}
