package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	reportService "quanlytaitro_backend/internals/features/donations/reporting/service"
	"quanlytaitro_backend/internals/features/donors/dto"
	"quanlytaitro_backend/internals/features/donors/model"
	helper "quanlytaitro_backend/internals/helpers"
)

type DonorController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Cache    *reportService.StatsCache
}

func NewDonorController(db *gorm.DB, cache *reportService.StatsCache) *DonorController {
	return &DonorController{DB: db, Validate: validator.New(), Cache: cache}
}

type donationCounts struct {
	DonorID uuid.UUID `json:"-"`
	Cash    int64     `json:"cash"`
	InKind  int64     `json:"in_kind"`
	Volunt  int64     `json:"volunteer"`
}

type donorListItem struct {
	model.Donor
	DonationCounts donationCounts `json:"donation_counts"`
}

// 🟢 GET /donors — danh sách + search + filter type/tier + phân trang
func (ctrl *DonorController) GetDonors(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, helper.DefaultOpts)

	q := ctrl.DB.Model(&model.Donor{})

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"donor_full_name ILIKE ? OR donor_email ILIKE ? OR donor_phone ILIKE ?",
			like, like, like,
		)
	}
	if donorType := c.Query("type"); donorType != "" {
		q = q.Where("donor_type = ?", donorType)
	}
	if tier := c.Query("tier"); tier != "" {
		q = q.Where("donor_tier = ?", tier)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] Đếm donors thất bại:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	var donors []model.Donor
	if err := q.
		Order("created_at DESC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&donors).Error; err != nil {
		log.Println("[ERROR] Lấy donors thất bại:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	items, err := ctrl.attachDonationCounts(donors)
	if err != nil {
		log.Println("[ERROR] Đếm donations theo donor thất bại:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "OK", fiber.Map{
		"donors":     items,
		"pagination": helper.BuildMeta(total, p),
	})
}

// attachDonationCounts gom số lượt tài trợ từng loại cho trang hiện tại.
func (ctrl *DonorController) attachDonationCounts(donors []model.Donor) ([]donorListItem, error) {
	items := make([]donorListItem, len(donors))
	if len(donors) == 0 {
		return items, nil
	}

	ids := make([]uuid.UUID, len(donors))
	idx := make(map[uuid.UUID]int, len(donors))
	for i, d := range donors {
		ids[i] = d.DonorID
		idx[d.DonorID] = i
		items[i] = donorListItem{Donor: d}
	}

	type row struct {
		DonorID uuid.UUID
		Cnt     int64
	}
	count := func(table, donorCol string, assign func(i int, n int64)) error {
		var rows []row
		if err := ctrl.DB.
			Table(table).
			Select(donorCol+" AS donor_id, COUNT(*) AS cnt").
			Where(donorCol+" IN ? AND deleted_at IS NULL", ids).
			Group(donorCol).
			Scan(&rows).Error; err != nil {
			return err
		}
		for _, r := range rows {
			if i, ok := idx[r.DonorID]; ok {
				assign(i, r.Cnt)
			}
		}
		return nil
	}

	if err := count("donations_cash", "donation_cash_donor_id", func(i int, n int64) {
		items[i].DonationCounts.Cash = n
	}); err != nil {
		return nil, err
	}
	if err := count("donations_in_kind", "donation_in_kind_donor_id", func(i int, n int64) {
		items[i].DonationCounts.InKind = n
	}); err != nil {
		return nil, err
	}
	if err := count("donations_volunteer", "donation_volunteer_donor_id", func(i int, n int64) {
		items[i].DonationCounts.Volunt = n
	}); err != nil {
		return nil, err
	}
	return items, nil
}

// 🟢 GET /donors/:id — chi tiết kèm toàn bộ lịch sử
func (ctrl *DonorController) GetDonor(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "donor_id không hợp lệ")
	}

	var donor model.Donor
	if err := ctrl.DB.First(&donor, "donor_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy nhà tài trợ")
		}
		log.Println("[ERROR] Lấy donor thất bại:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	history := fiber.Map{"donor": donor}

	load := func(key, table, donorCol, order string) error {
		rows := []map[string]interface{}{}
		if err := ctrl.DB.
			Table(table).
			Where(donorCol+" = ? AND deleted_at IS NULL", id).
			Order(order).
			Find(&rows).Error; err != nil {
			return err
		}
		history[key] = rows
		return nil
	}

	if err := load("cash_donations", "donations_cash", "donation_cash_donor_id", "donation_cash_received_date DESC"); err != nil {
		log.Println("[ERROR] Lịch sử tiền mặt:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if err := load("in_kind_donations", "donations_in_kind", "donation_in_kind_donor_id", "created_at DESC"); err != nil {
		log.Println("[ERROR] Lịch sử hiện vật:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if err := load("volunteer_donations", "donations_volunteer", "donation_volunteer_donor_id", "donation_volunteer_start_date DESC"); err != nil {
		log.Println("[ERROR] Lịch sử tình nguyện:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if err := load("interactions", "interactions", "interaction_donor_id", "interaction_date DESC"); err != nil {
		log.Println("[ERROR] Lịch sử tiếp xúc:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	emailLogs := []map[string]interface{}{}
	if err := ctrl.DB.
		Table("email_logs").
		Where("email_log_donor_id = ?", id).
		Order("email_log_sent_at DESC NULLS LAST").
		Find(&emailLogs).Error; err != nil {
		log.Println("[ERROR] Lịch sử email:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	history["email_logs"] = emailLogs

	pendingReminders := []map[string]interface{}{}
	if err := ctrl.DB.
		Table("reminders").
		Where("reminder_donor_id = ? AND reminder_is_completed = FALSE AND deleted_at IS NULL", id).
		Order("reminder_due_date ASC").
		Find(&pendingReminders).Error; err != nil {
		log.Println("[ERROR] Reminders:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	history["reminders"] = pendingReminders

	return helper.Success(c, "OK", history)
}

// 🟢 POST /donors — tạo mới, manager là user đang đăng nhập
func (ctrl *DonorController) CreateDonor(c *fiber.Ctx) error {
	var body dto.CreateDonorRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload không hợp lệ")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var managerID *uuid.UUID
	if raw, ok := c.Locals("user_id").(string); ok && raw != "" {
		if parsed, err := uuid.Parse(raw); err == nil {
			managerID = &parsed
		}
	}

	donor := body.ToModel(managerID)
	if err := ctrl.DB.Create(&donor).Error; err != nil {
		log.Println("[ERROR] Tạo donor thất bại:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	ctrl.Cache.Invalidate(c.Context())
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Đã tạo nhà tài trợ", donor)
}

// 🟢 PUT /donors/:id
func (ctrl *DonorController) UpdateDonor(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "donor_id không hợp lệ")
	}

	var body dto.UpdateDonorRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload không hợp lệ")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var donor model.Donor
	if err := ctrl.DB.First(&donor, "donor_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy nhà tài trợ")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	body.ApplyTo(&donor)
	if err := ctrl.DB.Save(&donor).Error; err != nil {
		log.Println("[ERROR] Cập nhật donor thất bại:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	ctrl.Cache.Invalidate(c.Context())
	return helper.Success(c, "Đã cập nhật nhà tài trợ", donor)
}

// 🟢 DELETE /donors/:id — soft delete, lịch sử tài trợ vẫn giữ nguyên
func (ctrl *DonorController) DeleteDonor(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "donor_id không hợp lệ")
	}

	res := ctrl.DB.Delete(&model.Donor{}, "donor_id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] Xoá donor thất bại:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy nhà tài trợ")
	}

	ctrl.Cache.Invalidate(c.Context())
	return helper.Success(c, "Đã xoá nhà tài trợ", nil)
}
