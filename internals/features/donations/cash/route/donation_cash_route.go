package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cashController "quanlytaitro_backend/internals/features/donations/cash/controller"
	reportService "quanlytaitro_backend/internals/features/donations/reporting/service"
)

func DonationCashRoutes(api fiber.Router, db *gorm.DB, cache *reportService.StatsCache) {
	ctrl := cashController.NewDonationCashController(db, cache)

	api.Get("/", ctrl.GetDonations)
	api.Get("/:id", ctrl.GetDonation)
	api.Post("/", ctrl.CreateDonation)
	api.Put("/:id", ctrl.UpdateDonation)
	api.Delete("/:id", ctrl.DeleteDonation)
}
