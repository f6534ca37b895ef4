package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quanlytaitro_backend/internals/features/donations/reporting/service"
	helper "quanlytaitro_backend/internals/helpers"
)

const exportRowLimit = 1000

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// 🟢 GET /reports/excel — file 4 sheet, lọc start_date/end_date tuỳ chọn
func (ctrl *ReportController) ExportExcel(c *fiber.Ctx) error {
	rng, err := parseRange(c, "start_date", "end_date")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Ngày lọc không hợp lệ (YYYY-MM-DD)")
	}

	data, err := ctrl.collect(rng)
	if err != nil {
		log.Println("[ERROR] Gom dữ liệu báo cáo Excel:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	wb, err := service.BuildWorkbook(*data)
	if err != nil {
		log.Println("[ERROR] Dựng file Excel:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	buf, err := wb.WriteToBuffer()
	if err != nil {
		log.Println("[ERROR] Ghi file Excel:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+reportFileName(rng, "xlsx")+`"`)
	return c.Send(buf.Bytes())
}

// 🟢 GET /reports/pdf — báo cáo tóm tắt
func (ctrl *ReportController) ExportPDF(c *fiber.Ctx) error {
	rng, err := parseRange(c, "start_date", "end_date")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Ngày lọc không hợp lệ (YYYY-MM-DD)")
	}

	data, err := ctrl.collect(rng)
	if err != nil {
		log.Println("[ERROR] Gom dữ liệu báo cáo PDF:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	out, err := service.BuildPDF(*data, rng)
	if err != nil {
		log.Println("[ERROR] Dựng file PDF:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+reportFileName(rng, "pdf")+`"`)
	return c.Send(out)
}

// collect nạp dữ liệu bốn nhóm. Danh sách nhà tài trợ lấy toàn bộ,
// ba loại tài trợ lọc theo ngày nghiệp vụ của từng loại.
func (ctrl *ReportController) collect(rng service.DateRange) (*service.ReportData, error) {
	data := &service.ReportData{}

	if err := ctrl.DB.
		Order("created_at DESC").
		Limit(exportRowLimit).
		Find(&data.Donors).Error; err != nil {
		return nil, err
	}

	if err := rangeScope(ctrl.DB, "donation_cash_received_date", rng).
		Preload("Donor").
		Order("donation_cash_received_date DESC").
		Limit(exportRowLimit).
		Find(&data.Cash).Error; err != nil {
		return nil, err
	}

	if err := rangeScope(ctrl.DB, "created_at", rng).
		Preload("Donor").
		Order("created_at DESC").
		Limit(exportRowLimit).
		Find(&data.InKind).Error; err != nil {
		return nil, err
	}

	if err := rangeScope(ctrl.DB, "donation_volunteer_start_date", rng).
		Preload("Donor").
		Order("donation_volunteer_start_date DESC").
		Limit(exportRowLimit).
		Find(&data.Volunteers).Error; err != nil {
		return nil, err
	}

	return data, nil
}

func rangeScope(db *gorm.DB, dateCol string, rng service.DateRange) *gorm.DB {
	q := db
	if rng.From != nil {
		q = q.Where(dateCol+" >= ?", *rng.From)
	}
	if rng.To != nil {
		q = q.Where(dateCol+" <= ?", *rng.To)
	}
	return q
}

func reportFileName(rng service.DateRange, ext string) string {
	from := "tat_ca"
	to := "den_nay"
	if rng.From != nil {
		from = rng.From.Format("02-01-2006")
	}
	if rng.To != nil {
		to = rng.To.Format("02-01-2006")
	}
	return "Bao_cao_" + from + "_" + to + "." + ext
}
