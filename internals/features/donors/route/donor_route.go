package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportService "quanlytaitro_backend/internals/features/donations/reporting/service"
	donorController "quanlytaitro_backend/internals/features/donors/controller"
)

// DonorRoutes gắn các route quản lý nhà tài trợ
func DonorRoutes(api fiber.Router, db *gorm.DB, cache *reportService.StatsCache) {
	ctrl := donorController.NewDonorController(db, cache)

	api.Get("/", ctrl.GetDonors)
	api.Get("/:id", ctrl.GetDonor)
	api.Post("/", ctrl.CreateDonor)
	api.Put("/:id", ctrl.UpdateDonor)
	api.Delete("/:id", ctrl.DeleteDonor)
}
