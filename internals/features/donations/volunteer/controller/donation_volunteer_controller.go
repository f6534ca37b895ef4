package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	reportService "quanlytaitro_backend/internals/features/donations/reporting/service"
	"quanlytaitro_backend/internals/features/donations/volunteer/dto"
	"quanlytaitro_backend/internals/features/donations/volunteer/model"
	helper "quanlytaitro_backend/internals/helpers"
)

type DonationVolunteerController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Cache    *reportService.StatsCache
}

func NewDonationVolunteerController(db *gorm.DB, cache *reportService.StatsCache) *DonationVolunteerController {
	return &DonationVolunteerController{DB: db, Validate: validator.New(), Cache: cache}
}

// 🟢 GET /donations/volunteer — phân trang + lọc donor
func (ctrl *DonationVolunteerController) GetDonations(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, helper.DefaultOpts)

	q := ctrl.DB.Model(&model.DonationVolunteer{})
	if donorID := c.Query("donor_id"); donorID != "" {
		id, err := uuid.Parse(donorID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "donor_id không hợp lệ")
		}
		q = q.Where("donation_volunteer_donor_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] Đếm công tác tình nguyện:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	var donations []model.DonationVolunteer
	if err := q.
		Preload("Donor").
		Order("donation_volunteer_start_date DESC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&donations).Error; err != nil {
		log.Println("[ERROR] Lấy công tác tình nguyện:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "OK", fiber.Map{
		"donations":  donations,
		"pagination": helper.BuildMeta(total, p),
	})
}

// 🟢 GET /donations/volunteer/:id
func (ctrl *DonationVolunteerController) GetDonation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id không hợp lệ")
	}

	var donation model.DonationVolunteer
	if err := ctrl.DB.Preload("Donor").First(&donation, "donation_volunteer_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy hoạt động tình nguyện")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "OK", donation)
}

// 🟢 POST /donations/volunteer — total_value luôn do server tính
func (ctrl *DonationVolunteerController) CreateDonation(c *fiber.Ctx) error {
	var body dto.CreateDonationVolunteerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload không hợp lệ")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	donation := body.ToModel()
	if err := ctrl.DB.Create(&donation).Error; err != nil {
		log.Println("[ERROR] Tạo công tác tình nguyện:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	ctrl.Cache.Invalidate(c.Context())
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Đã ghi nhận hoạt động tình nguyện", donation)
}

// 🟢 PUT /donations/volunteer/:id
func (ctrl *DonationVolunteerController) UpdateDonation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id không hợp lệ")
	}

	var body dto.UpdateDonationVolunteerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload không hợp lệ")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var donation model.DonationVolunteer
	if err := ctrl.DB.First(&donation, "donation_volunteer_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy hoạt động tình nguyện")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if body.DonationVolunteerEndDate != nil {
		start := donation.DonationVolunteerStartDate
		if body.DonationVolunteerStartDate != nil {
			start = *body.DonationVolunteerStartDate
		}
		if body.DonationVolunteerEndDate.Before(start) {
			return helper.Error(c, fiber.StatusBadRequest, "Ngày kết thúc phải sau ngày bắt đầu")
		}
	}

	body.ApplyTo(&donation)
	if err := ctrl.DB.Save(&donation).Error; err != nil {
		log.Println("[ERROR] Cập nhật công tác tình nguyện:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	ctrl.Cache.Invalidate(c.Context())
	return helper.Success(c, "Đã cập nhật hoạt động tình nguyện", donation)
}

// 🟢 DELETE /donations/volunteer/:id — soft delete
func (ctrl *DonationVolunteerController) DeleteDonation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id không hợp lệ")
	}

	res := ctrl.DB.Delete(&model.DonationVolunteer{}, "donation_volunteer_id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] Xoá công tác tình nguyện:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy hoạt động tình nguyện")
	}

	ctrl.Cache.Invalidate(c.Context())
	return helper.Success(c, "Đã xoá hoạt động tình nguyện", nil)
}
