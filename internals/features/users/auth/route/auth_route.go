package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "quanlytaitro_backend/internals/features/users/auth/controller"
	"quanlytaitro_backend/internals/middlewares"
)

// AuthRoutes: login công khai (giới hạn 5 lần/phút), phần còn lại cần token.
func AuthRoutes(public fiber.Router, protected fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	public.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)

	protected.Post("/logout", ctrl.Logout)
	protected.Get("/me", ctrl.Me)
}
