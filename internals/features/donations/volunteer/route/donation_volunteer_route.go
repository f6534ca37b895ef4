package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportService "quanlytaitro_backend/internals/features/donations/reporting/service"
	volunteerController "quanlytaitro_backend/internals/features/donations/volunteer/controller"
)

func DonationVolunteerRoutes(api fiber.Router, db *gorm.DB, cache *reportService.StatsCache) {
	ctrl := volunteerController.NewDonationVolunteerController(db, cache)

	api.Get("/", ctrl.GetDonations)
	api.Get("/:id", ctrl.GetDonation)
	api.Post("/", ctrl.CreateDonation)
	api.Put("/:id", ctrl.UpdateDonation)
	api.Delete("/:id", ctrl.DeleteDonation)
}
