package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	inkindController "quanlytaitro_backend/internals/features/donations/inkind/controller"
	reportService "quanlytaitro_backend/internals/features/donations/reporting/service"
)

func DonationInKindRoutes(api fiber.Router, db *gorm.DB, cache *reportService.StatsCache) {
	ctrl := inkindController.NewDonationInKindController(db, cache)

	api.Get("/", ctrl.GetDonations)
	api.Get("/:id", ctrl.GetDonation)
	api.Post("/", ctrl.CreateDonation)
	api.Put("/:id", ctrl.UpdateDonation)
	api.Delete("/:id", ctrl.DeleteDonation)
}
