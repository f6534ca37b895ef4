package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	interactionController "quanlytaitro_backend/internals/features/interactions/controller"
)

func InteractionRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := interactionController.NewInteractionController(db)

	api.Get("/", ctrl.GetInteractions)
	api.Get("/:id", ctrl.GetInteraction)
	api.Post("/", ctrl.CreateInteraction)
	api.Put("/:id", ctrl.UpdateInteraction)
	api.Delete("/:id", ctrl.DeleteInteraction)
}
