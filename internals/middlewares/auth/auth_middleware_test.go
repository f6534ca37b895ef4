package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"quanlytaitro_backend/internals/configs"
)

func setupAuthApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/protected", AuthMiddleware(gdb), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("user_id")})
	})
	return app, mock
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	app, _ := setupAuthApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app, mock := setupAuthApp(t)

	token := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": "6e7c0c0e-0000-0000-0000-000000000001",
		"role":    "ADMIN",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	mock.ExpectQuery(`SELECT \* FROM "token_blacklist"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthMiddlewareBlacklistedToken(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app, mock := setupAuthApp(t)

	token := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": "6e7c0c0e-0000-0000-0000-000000000001",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	mock.ExpectQuery(`SELECT \* FROM "token_blacklist"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "token", "expired_at"}).
			AddRow(1, token, time.Now().Add(time.Hour)))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareWrongSignature(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app, mock := setupAuthApp(t)

	token := signToken(t, "other-secret", jwt.MapClaims{
		"user_id": "6e7c0c0e-0000-0000-0000-000000000001",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	mock.ExpectQuery(`SELECT \* FROM "token_blacklist"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestTokenExpiryReadsExpClaim(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	token := signToken(t, "whatever", jwt.MapClaims{"exp": exp.Unix()})

	assert.Equal(t, exp.Unix(), TokenExpiry(token).Unix())
}

func TestTokenExpiryFallback(t *testing.T) {
	got := TokenExpiry("not-a-token")
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), got, time.Minute)
}
