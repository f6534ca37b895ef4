package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reminderController "quanlytaitro_backend/internals/features/reminders/controller"
)

func ReminderRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := reminderController.NewReminderController(db)

	api.Get("/", ctrl.GetReminders)
	api.Get("/:id", ctrl.GetReminder)
	api.Post("/", ctrl.CreateReminder)
	api.Put("/:id", ctrl.UpdateReminder)
	api.Delete("/:id", ctrl.DeleteReminder)
}
