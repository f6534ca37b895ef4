package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	reportService "quanlytaitro_backend/internals/features/donations/reporting/service"
)

func setupApp(t *testing.T, cache *reportService.StatsCache) (*fiber.App, sqlmock.Sqlmock) {
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
	ctrl := NewDonationCashController(gdb, cache)
	app.Delete("/donations/cash/:id", ctrl.DeleteDonation)
	return app, mock
}

func TestDeleteDonationClearsDashboardCache(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := reportService.NewStatsCache(mr.Addr())
	require.NoError(t, mr.Set("dashboard:stats:-", `{"grand_total":0}`))

	app, mock := setupApp(t, cache)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "donations_cash" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req := httptest.NewRequest("DELETE", "/donations/cash/"+uuid.NewString(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// số liệu đệm phải bị xoá ngay sau khi ghi, không chờ hết TTL
	assert.False(t, mr.Exists("dashboard:stats:-"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteDonationWithoutCacheConfigured(t *testing.T) {
	app, mock := setupApp(t, nil)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "donations_cash" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req := httptest.NewRequest("DELETE", "/donations/cash/"+uuid.NewString(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
