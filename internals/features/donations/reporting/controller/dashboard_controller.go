package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quanlytaitro_backend/internals/features/donations/reporting/service"
	helper "quanlytaitro_backend/internals/helpers"
)

type DashboardController struct {
	Agg *service.AggregationService
}

func NewDashboardController(db *gorm.DB, cache *service.StatsCache) *DashboardController {
	return &DashboardController{Agg: service.NewAggregationService(db, cache)}
}

// 🟢 GET /dashboard/stats — số liệu tổng hợp, lọc khoảng thời gian tuỳ chọn
func (ctrl *DashboardController) GetStats(c *fiber.Ctx) error {
	rng, err := parseRange(c, "from", "to")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Ngày lọc không hợp lệ (YYYY-MM-DD)")
	}

	stats, err := ctrl.Agg.Stats(c.Context(), rng)
	if err != nil {
		log.Println("[ERROR] Tổng hợp dashboard:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "OK", stats)
}

// 🟢 GET /dashboard/trends — xu hướng theo tháng, mặc định 6 tháng gần nhất
func (ctrl *DashboardController) GetTrends(c *fiber.Ctx) error {
	rng, err := parseRange(c, "start_date", "end_date")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Ngày lọc không hợp lệ (YYYY-MM-DD)")
	}

	points, err := ctrl.Agg.MonthlyTrends(c.Context(), rng.From, rng.To)
	if err != nil {
		log.Println("[ERROR] Tính xu hướng theo tháng:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "OK", fiber.Map{"trends": points})
}

// parseRange đọc hai query param ngày dạng YYYY-MM-DD.
// Ngày kết thúc được đẩy tới cuối ngày để lọc bao trùm cả ngày đó.
func parseRange(c *fiber.Ctx, fromKey, toKey string) (service.DateRange, error) {
	var rng service.DateRange
	if raw := c.Query(fromKey); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return rng, err
		}
		rng.From = &t
	}
	if raw := c.Query(toKey); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return rng, err
		}
		end := t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		rng.To = &end
	}
	return rng, nil
}
