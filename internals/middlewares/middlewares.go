package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"quanlytaitro_backend/internals/middlewares/logger"
)

// SetupMiddlewares gắn chuỗi middleware chung cho toàn app.
func SetupMiddlewares(app *fiber.App) {
	app.Use(CorsMiddleware())
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
