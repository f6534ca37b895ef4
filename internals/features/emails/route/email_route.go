package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	emailController "quanlytaitro_backend/internals/features/emails/controller"
	"quanlytaitro_backend/internals/features/emails/service"
)

func EmailRoutes(api fiber.Router, db *gorm.DB, mailer *service.Mailer) {
	templates := emailController.NewEmailTemplateController(db)
	send := emailController.NewSendEmailController(db, mailer)

	api.Get("/templates", templates.GetTemplates)
	api.Get("/templates/:id", templates.GetTemplate)
	api.Post("/templates", templates.CreateTemplate)
	api.Put("/templates/:id", templates.UpdateTemplate)
	api.Delete("/templates/:id", templates.DeleteTemplate)

	api.Post("/send", send.SendEmails)
	api.Post("/preview", send.PreviewEmail)
}
