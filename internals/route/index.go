package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cashRoute "quanlytaitro_backend/internals/features/donations/cash/route"
	inKindRoute "quanlytaitro_backend/internals/features/donations/inkind/route"
	reportingRoute "quanlytaitro_backend/internals/features/donations/reporting/route"
	reportingService "quanlytaitro_backend/internals/features/donations/reporting/service"
	volunteerRoute "quanlytaitro_backend/internals/features/donations/volunteer/route"
	donorRoute "quanlytaitro_backend/internals/features/donors/route"
	emailRoute "quanlytaitro_backend/internals/features/emails/route"
	emailService "quanlytaitro_backend/internals/features/emails/service"
	interactionRoute "quanlytaitro_backend/internals/features/interactions/route"
	reminderRoute "quanlytaitro_backend/internals/features/reminders/route"
	authRoute "quanlytaitro_backend/internals/features/users/auth/route"
	authMiddleware "quanlytaitro_backend/internals/middlewares/auth"
)

var startTime time.Time

// SetupRoutes gắn toàn bộ route. /api/auth/login là endpoint công khai
// duy nhất, phần còn lại nằm sau JWT middleware trong group /api/a.
func SetupRoutes(app *fiber.App, db *gorm.DB, mailer *emailService.Mailer, cache *reportingService.StatsCache) {
	startTime = time.Now()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"uptime": time.Since(startTime).String(),
		})
	})

	public := app.Group("/api/auth")

	log.Println("[INFO] Setting up protected group /api/a ...")
	protected := app.Group("/api/a", authMiddleware.AuthMiddleware(db))

	authRoute.AuthRoutes(public, protected.Group("/auth"), db)

	// các route ghi dữ liệu nhận cache để xoá số liệu dashboard đã đệm
	donorRoute.DonorRoutes(protected.Group("/donors"), db, cache)

	cashRoute.DonationCashRoutes(protected.Group("/donations/cash"), db, cache)
	inKindRoute.DonationInKindRoutes(protected.Group("/donations/in-kind"), db, cache)
	volunteerRoute.DonationVolunteerRoutes(protected.Group("/donations/volunteer"), db, cache)

	reportingRoute.ReportingRoutes(protected, db, cache)

	interactionRoute.InteractionRoutes(protected.Group("/interactions"), db)
	emailRoute.EmailRoutes(protected.Group("/emails"), db, mailer)
	reminderRoute.ReminderRoutes(protected.Group("/reminders"), db)

	log.Println("[INFO] Routes ready")
}
