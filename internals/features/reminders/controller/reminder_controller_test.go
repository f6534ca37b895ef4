package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func setupApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
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
	ctrl := NewReminderController(gdb)
	app.Get("/reminders", ctrl.GetReminders)
	return app, mock
}

func TestGetRemindersRejectsUnknownFilter(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/reminders?filter=yesterday", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetRemindersRejectsBadDonorID(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/reminders?donor_id=not-a-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetRemindersTodayFilter(t *testing.T) {
	app, mock := setupApp(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "reminders"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "reminders"`).
		WillReturnRows(sqlmock.NewRows([]string{"reminder_id"}))

	resp, err := app.Test(httptest.NewRequest("GET", "/reminders?filter=today", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRemindersOverdueExcludesCompleted(t *testing.T) {
	app, mock := setupApp(t)

	// điều kiện overdue phải kèm reminder_is_completed = false
	mock.ExpectQuery(`SELECT count\(\*\) FROM "reminders" WHERE reminder_due_date < .+ AND reminder_is_completed = false`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "reminders"`).
		WillReturnRows(sqlmock.NewRows([]string{"reminder_id"}))

	resp, err := app.Test(httptest.NewRequest("GET", "/reminders?filter=overdue", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
