package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quanlytaitro_backend/internals/features/donations/cash/dto"
	"quanlytaitro_backend/internals/features/donations/cash/model"
	reportService "quanlytaitro_backend/internals/features/donations/reporting/service"
	helper "quanlytaitro_backend/internals/helpers"
)

type DonationCashController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Cache    *reportService.StatsCache
}

func NewDonationCashController(db *gorm.DB, cache *reportService.StatsCache) *DonationCashController {
	return &DonationCashController{DB: db, Validate: validator.New(), Cache: cache}
}

// 🟢 GET /donations/cash — phân trang + lọc theo donor
func (ctrl *DonationCashController) GetDonations(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, helper.DefaultOpts)

	q := ctrl.DB.Model(&model.DonationCash{})
	if donorID := c.Query("donor_id"); donorID != "" {
		id, err := uuid.Parse(donorID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "donor_id không hợp lệ")
		}
		q = q.Where("donation_cash_donor_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] Đếm tài trợ tiền mặt:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	var donations []model.DonationCash
	if err := q.
		Preload("Donor").
		Order("donation_cash_received_date DESC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&donations).Error; err != nil {
		log.Println("[ERROR] Lấy tài trợ tiền mặt:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "OK", fiber.Map{
		"donations":  donations,
		"pagination": helper.BuildMeta(total, p),
	})
}

// 🟢 GET /donations/cash/:id
func (ctrl *DonationCashController) GetDonation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id không hợp lệ")
	}

	var donation model.DonationCash
	if err := ctrl.DB.Preload("Donor").First(&donation, "donation_cash_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy khoản tài trợ")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "OK", donation)
}

// 🟢 POST /donations/cash
func (ctrl *DonationCashController) CreateDonation(c *fiber.Ctx) error {
	var body dto.CreateDonationCashRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload không hợp lệ")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	donation := body.ToModel()
	if err := ctrl.DB.Create(&donation).Error; err != nil {
		log.Println("[ERROR] Tạo tài trợ tiền mặt:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	ctrl.Cache.Invalidate(c.Context())
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Đã ghi nhận tài trợ tiền mặt", donation)
}

// 🟢 PUT /donations/cash/:id
func (ctrl *DonationCashController) UpdateDonation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id không hợp lệ")
	}

	var body dto.UpdateDonationCashRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload không hợp lệ")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var donation model.DonationCash
	if err := ctrl.DB.First(&donation, "donation_cash_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy khoản tài trợ")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	body.ApplyTo(&donation)
	if err := ctrl.DB.Save(&donation).Error; err != nil {
		log.Println("[ERROR] Cập nhật tài trợ tiền mặt:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	ctrl.Cache.Invalidate(c.Context())
	return helper.Success(c, "Đã cập nhật khoản tài trợ", donation)
}

// 🟢 DELETE /donations/cash/:id — soft delete
func (ctrl *DonationCashController) DeleteDonation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id không hợp lệ")
	}

	res := ctrl.DB.Delete(&model.DonationCash{}, "donation_cash_id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] Xoá tài trợ tiền mặt:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy khoản tài trợ")
	}

	ctrl.Cache.Invalidate(c.Context())
	return helper.Success(c, "Đã xoá khoản tài trợ", nil)
}
