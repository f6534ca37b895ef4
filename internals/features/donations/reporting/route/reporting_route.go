package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportingController "quanlytaitro_backend/internals/features/donations/reporting/controller"
	"quanlytaitro_backend/internals/features/donations/reporting/service"
)

func ReportingRoutes(api fiber.Router, db *gorm.DB, cache *service.StatsCache) {
	dashboard := reportingController.NewDashboardController(db, cache)
	report := reportingController.NewReportController(db)

	api.Get("/dashboard/stats", dashboard.GetStats)
	api.Get("/dashboard/trends", dashboard.GetTrends)

	api.Get("/reports/excel", report.ExportExcel)
	api.Get("/reports/pdf", report.ExportPDF)
}
