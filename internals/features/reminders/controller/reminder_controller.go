package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "quanlytaitro_backend/internals/helpers"

	"quanlytaitro_backend/internals/features/reminders/dto"
	"quanlytaitro_backend/internals/features/reminders/model"
)

type ReminderController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewReminderController(db *gorm.DB) *ReminderController {
	return &ReminderController{DB: db, Validate: validator.New()}
}

// 🟢 GET /reminders — filter=today|upcoming|overdue, completed=true|false
func (ctrl *ReminderController) GetReminders(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, helper.DefaultOpts)

	q := ctrl.DB.Model(&model.Reminder{})
	if donorID := c.Query("donor_id"); donorID != "" {
		id, err := uuid.Parse(donorID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "donor_id không hợp lệ")
		}
		q = q.Where("reminder_donor_id = ?", id)
	}
	if completed := c.Query("completed"); completed != "" {
		q = q.Where("reminder_is_completed = ?", completed == "true")
	}

	today, tomorrow := model.DayBounds(time.Now())
	switch c.Query("filter") {
	case "":
	case string(model.BucketToday):
		q = q.Where("reminder_due_date >= ? AND reminder_due_date < ?", today, tomorrow)
	case string(model.BucketUpcoming):
		q = q.Where("reminder_due_date >= ?", tomorrow)
	case string(model.BucketOverdue):
		q = q.Where("reminder_due_date < ? AND reminder_is_completed = false", today)
	default:
		return helper.Error(c, fiber.StatusBadRequest, "filter không hợp lệ (today|upcoming|overdue)")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] Đếm nhắc việc:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	var reminders []model.Reminder
	if err := q.
		Preload("Donor").
		Order("reminder_due_date ASC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&reminders).Error; err != nil {
		log.Println("[ERROR] Lấy nhắc việc:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "OK", fiber.Map{
		"reminders":  reminders,
		"pagination": helper.BuildMeta(total, p),
	})
}

// 🟢 GET /reminders/:id
func (ctrl *ReminderController) GetReminder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id không hợp lệ")
	}

	var reminder model.Reminder
	if err := ctrl.DB.Preload("Donor").First(&reminder, "reminder_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy nhắc việc")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "OK", reminder)
}

// 🟢 POST /reminders
func (ctrl *ReminderController) CreateReminder(c *fiber.Ctx) error {
	var body dto.CreateReminderRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload không hợp lệ")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	reminder := body.ToModel()
	if err := ctrl.DB.Create(&reminder).Error; err != nil {
		log.Println("[ERROR] Tạo nhắc việc:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Đã tạo nhắc việc", reminder)
}

// 🟢 PUT /reminders/:id — hoàn thành thì đóng mốc completed_at
func (ctrl *ReminderController) UpdateReminder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id không hợp lệ")
	}

	var body dto.UpdateReminderRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload không hợp lệ")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var reminder model.Reminder
	if err := ctrl.DB.First(&reminder, "reminder_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy nhắc việc")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	body.ApplyTo(&reminder, time.Now())
	if err := ctrl.DB.Save(&reminder).Error; err != nil {
		log.Println("[ERROR] Cập nhật nhắc việc:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "Đã cập nhật nhắc việc", reminder)
}

// 🟢 DELETE /reminders/:id — soft delete
func (ctrl *ReminderController) DeleteReminder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id không hợp lệ")
	}

	res := ctrl.DB.Delete(&model.Reminder{}, "reminder_id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] Xoá nhắc việc:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy nhắc việc")
	}

	return helper.Success(c, "Đã xoá nhắc việc", nil)
}
