package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quanlytaitro_backend/internals/features/donations/inkind/dto"
	"quanlytaitro_backend/internals/features/donations/inkind/model"
	reportService "quanlytaitro_backend/internals/features/donations/reporting/service"
	helper "quanlytaitro_backend/internals/helpers"
)

type DonationInKindController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Cache    *reportService.StatsCache
}

func NewDonationInKindController(db *gorm.DB, cache *reportService.StatsCache) *DonationInKindController {
	return &DonationInKindController{DB: db, Validate: validator.New(), Cache: cache}
}

// 🟢 GET /donations/in-kind — phân trang + lọc donor/category
func (ctrl *DonationInKindController) GetDonations(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, helper.DefaultOpts)

	q := ctrl.DB.Model(&model.DonationInKind{})
	if donorID := c.Query("donor_id"); donorID != "" {
		id, err := uuid.Parse(donorID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "donor_id không hợp lệ")
		}
		q = q.Where("donation_in_kind_donor_id = ?", id)
	}
	if category := c.Query("category"); category != "" {
		q = q.Where("donation_in_kind_category = ?", category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] Đếm tài trợ hiện vật:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	var donations []model.DonationInKind
	if err := q.
		Preload("Donor").
		Order("created_at DESC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&donations).Error; err != nil {
		log.Println("[ERROR] Lấy tài trợ hiện vật:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "OK", fiber.Map{
		"donations":  donations,
		"pagination": helper.BuildMeta(total, p),
	})
}

// 🟢 GET /donations/in-kind/:id
func (ctrl *DonationInKindController) GetDonation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id không hợp lệ")
	}

	var donation model.DonationInKind
	if err := ctrl.DB.Preload("Donor").First(&donation, "donation_in_kind_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy khoản tài trợ")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "OK", donation)
}

// 🟢 POST /donations/in-kind
func (ctrl *DonationInKindController) CreateDonation(c *fiber.Ctx) error {
	var body dto.CreateDonationInKindRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload không hợp lệ")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	donation := body.ToModel()
	if err := ctrl.DB.Create(&donation).Error; err != nil {
		log.Println("[ERROR] Tạo tài trợ hiện vật:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	ctrl.Cache.Invalidate(c.Context())
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Đã ghi nhận tài trợ hiện vật", donation)
}

// 🟢 PUT /donations/in-kind/:id
func (ctrl *DonationInKindController) UpdateDonation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id không hợp lệ")
	}

	var body dto.UpdateDonationInKindRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload không hợp lệ")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var donation model.DonationInKind
	if err := ctrl.DB.First(&donation, "donation_in_kind_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy khoản tài trợ")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	body.ApplyTo(&donation)
	if err := ctrl.DB.Save(&donation).Error; err != nil {
		log.Println("[ERROR] Cập nhật tài trợ hiện vật:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	ctrl.Cache.Invalidate(c.Context())
	return helper.Success(c, "Đã cập nhật khoản tài trợ", donation)
}

// 🟢 DELETE /donations/in-kind/:id — soft delete
func (ctrl *DonationInKindController) DeleteDonation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id không hợp lệ")
	}

	res := ctrl.DB.Delete(&model.DonationInKind{}, "donation_in_kind_id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] Xoá tài trợ hiện vật:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy khoản tài trợ")
	}

	ctrl.Cache.Invalidate(c.Context())
	return helper.Success(c, "Đã xoá khoản tài trợ", nil)
}
