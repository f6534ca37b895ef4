package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"quanlytaitro_backend/internals/configs"
	"quanlytaitro_backend/internals/features/users/auth/dto"
	authModel "quanlytaitro_backend/internals/features/users/auth/model"
	userModel "quanlytaitro_backend/internals/features/users/user/model"
	helper "quanlytaitro_backend/internals/helpers"
	authMiddleware "quanlytaitro_backend/internals/middlewares/auth"
)

const tokenTTL = 24 * time.Hour

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

// 🟢 POST /auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload không hợp lệ")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.User
	if err := ctrl.DB.First(&user, "user_email = ?", body.UserEmail).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Email hoặc mật khẩu không đúng")
		}
		log.Println("[ERROR] Tìm user khi login:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(body.UserPassword)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Email hoặc mật khẩu không đúng")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.UserID.String(),
		"role":    user.UserRole,
		"iat":     now.Unix(),
		"exp":     now.Add(tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		log.Println("[ERROR] Ký JWT:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "Đăng nhập thành công", fiber.Map{
		"access_token": token,
		"user":         user,
	})
}

// 🟢 POST /auth/logout — đưa token hiện tại vào blacklist
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	tokenString := c.Get("Authorization")
	if len(tokenString) > 7 {
		tokenString = tokenString[7:] // bỏ "Bearer "
	}
	if tokenString == "" {
		tokenString = c.Cookies("access_token")
	}
	if tokenString == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Thiếu token")
	}

	entry := authModel.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: authMiddleware.TokenExpiry(tokenString),
	}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		log.Println("[ERROR] Ghi blacklist khi logout:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "Đăng xuất thành công", nil)
}

// 🟢 GET /auth/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user userModel.User
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy người dùng")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "OK", user)
}
