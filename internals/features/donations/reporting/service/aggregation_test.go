package service

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
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
	return gdb, mock
}

func TestKindFilter(t *testing.T) {
	where, args := kindFilter(cashKind, DateRange{})
	assert.Equal(t, "deleted_at IS NULL", where)
	assert.Empty(t, args)

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.Local)
	where, args = kindFilter(cashKind, DateRange{From: &from, To: &to})
	assert.Equal(t, "deleted_at IS NULL AND donation_cash_received_date >= ? AND donation_cash_received_date <= ?", where)
	assert.Len(t, args, 2)
}

func TestKindSpecsAggregationDates(t *testing.T) {
	// mỗi loại lọc theo ngày nghiệp vụ riêng
	assert.Equal(t, "donation_cash_received_date", cashKind.DateCol)
	assert.Equal(t, "created_at", inKindKind.DateCol)
	assert.Equal(t, "donation_volunteer_start_date", volunteerKind.DateCol)

	// chỉ tiền mặt có điều kiện VND khi cộng
	assert.Contains(t, cashKind.SumExtra, "VND")
	assert.Empty(t, inKindKind.SumExtra)
	assert.Empty(t, volunteerKind.SumExtra)
}

func TestKindStatCashCountsAllCurrenciesSumsVNDOnly(t *testing.T) {
	gdb, mock := setupMockDB(t)
	svc := NewAggregationService(gdb, nil)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM donations_cash WHERE deleted_at IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(donation_cash_amount\), 0\) FROM donations_cash WHERE deleted_at IS NULL AND donation_cash_currency = 'VND'`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(50_000_000.0))

	stat, err := svc.kindStat(context.Background(), cashKind, DateRange{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), stat.Count)
	assert.Equal(t, float64(50_000_000), stat.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStartOfMonth(t *testing.T) {
	ts := time.Date(2024, 3, 17, 22, 5, 0, 0, time.Local)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local), startOfMonth(ts))
}

func TestMonthlyTrendsEmitsZeroBuckets(t *testing.T) {
	gdb, mock := setupMockDB(t)
	svc := NewAggregationService(gdb, nil)

	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.Local)
	end := time.Date(2024, 2, 20, 0, 0, 0, 0, time.Local)

	// 2 tháng × 3 loại × (count + sum), theo thứ tự cash, in-kind, volunteer
	totals := map[string][]float64{
		"01/2024": {50_000_000, 0, 20_000_000},
		"02/2024": {0, 0, 0},
	}
	for _, month := range []string{"01/2024", "02/2024"} {
		for i, k := range allKinds {
			mock.ExpectQuery(`SELECT COUNT\(\*\) FROM ` + k.Table).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
			mock.ExpectQuery(`SELECT COALESCE\(SUM\(` + k.ValueCol + `\), 0\) FROM ` + k.Table).
				WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(totals[month][i]))
		}
	}

	points, err := svc.MonthlyTrends(context.Background(), &start, &end)
	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.Equal(t, "01/2024", points[0].Month)
	assert.Equal(t, float64(50_000_000), points[0].Cash)
	assert.Equal(t, float64(20_000_000), points[0].Volunteer)
	assert.Equal(t, float64(70_000_000), points[0].Total)

	// tháng không có dữ liệu vẫn xuất hiện với tổng 0
	assert.Equal(t, "02/2024", points[1].Month)
	assert.Zero(t, points[1].Total)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsAggregatesAllKinds(t *testing.T) {
	gdb, mock := setupMockDB(t)
	svc := NewAggregationService(gdb, nil)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "donors"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	kindTotals := []float64{50_000_000, 100_000_000, 20_000_000}
	for i, k := range allKinds {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM ` + k.Table).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery(`SELECT COALESCE\(SUM\(` + k.ValueCol + `\), 0\) FROM ` + k.Table).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(kindTotals[i]))
	}

	mock.ExpectQuery(`SELECT d\.donor_id, d\.donor_full_name`).
		WillReturnRows(sqlmock.NewRows([]string{
			"donor_id", "donor_full_name", "donor_type", "donor_tier", "total_value", "donation_count",
		}).AddRow("6e7c0c0e-0000-0000-0000-000000000001", "Nguyễn Văn An", "INDIVIDUAL", "VIP", 70_000_000.0, 2))

	stats, err := svc.Stats(context.Background(), DateRange{})
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalDonors)
	assert.Equal(t, float64(170_000_000), stats.GrandTotal)
	require.Len(t, stats.DonationsByType, 3)
	assert.Equal(t, "Tiền mặt", stats.DonationsByType[0].Label)
	assert.Equal(t, "Hiện vật", stats.DonationsByType[1].Label)
	assert.Equal(t, "Tình nguyện", stats.DonationsByType[2].Label)
	require.Len(t, stats.TopDonors, 1)
	assert.Equal(t, "Nguyễn Văn An", stats.TopDonors[0].DonorFullName)

	assert.NoError(t, mock.ExpectationsWereMet())
}
