package service

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
)

// DateRange là khoảng thời gian tuỳ chọn, so theo cột ngày của từng loại.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

func (r DateRange) IsZero() bool { return r.From == nil && r.To == nil }

type KindStat struct {
	Count int64   `json:"count"`
	Total float64 `json:"total"`
}

type TypeSlice struct {
	Label string  `json:"label"`
	Total float64 `json:"total"`
}

type TopDonor struct {
	DonorID       string  `json:"donor_id"`
	DonorFullName string  `json:"donor_full_name"`
	DonorType     string  `json:"donor_type"`
	DonorTier     string  `json:"donor_tier"`
	TotalValue    float64 `json:"total_value"`
	DonationCount int64   `json:"donation_count"`
}

type Stats struct {
	TotalDonors     int64       `json:"total_donors"`
	Cash            KindStat    `json:"cash"`
	InKind          KindStat    `json:"in_kind"`
	Volunteer       KindStat    `json:"volunteer"`
	GrandTotal      float64     `json:"grand_total"`
	DonationsByType []TypeSlice `json:"donations_by_type"`
	TopDonors       []TopDonor  `json:"top_donors"`
}

type TrendPoint struct {
	Month     string  `json:"month"` // "01/2006"
	Cash      float64 `json:"cash"`
	InKind    float64 `json:"in_kind"`
	Volunteer float64 `json:"volunteer"`
	Total     float64 `json:"total"`
}

type AggregationService struct {
	DB    *gorm.DB
	Cache *StatsCache
}

func NewAggregationService(db *gorm.DB, cache *StatsCache) *AggregationService {
	return &AggregationService{DB: db, Cache: cache}
}

// Stats gom toàn bộ số liệu dashboard trong một lần gọi.
// Khoảng thời gian lọc theo ngày nghiệp vụ của từng loại tài trợ.
func (s *AggregationService) Stats(ctx context.Context, rng DateRange) (*Stats, error) {
	if cached, ok := s.Cache.Get(ctx, rng); ok {
		return cached, nil
	}

	out := &Stats{}

	if err := s.DB.WithContext(ctx).
		Table("donors").
		Where("deleted_at IS NULL").
		Count(&out.TotalDonors).Error; err != nil {
		return nil, err
	}

	for _, k := range allKinds {
		stat, err := s.kindStat(ctx, k, rng)
		if err != nil {
			return nil, err
		}
		switch k.Key {
		case cashKind.Key:
			out.Cash = stat
		case inKindKind.Key:
			out.InKind = stat
		case volunteerKind.Key:
			out.Volunteer = stat
		}
		out.GrandTotal += stat.Total
		out.DonationsByType = append(out.DonationsByType, TypeSlice{Label: k.Label, Total: stat.Total})
	}

	top, err := s.TopDonors(ctx, rng, 10)
	if err != nil {
		return nil, err
	}
	out.TopDonors = top

	s.Cache.Set(ctx, rng, out)
	return out, nil
}

func (s *AggregationService) kindStat(ctx context.Context, k kindSpec, rng DateRange) (KindStat, error) {
	var stat KindStat

	where, args := kindFilter(k, rng)

	if err := s.DB.WithContext(ctx).Raw(
		"SELECT COUNT(*) FROM "+k.Table+" WHERE "+where, args...,
	).Scan(&stat.Count).Error; err != nil {
		return stat, err
	}

	sumWhere := where
	if k.SumExtra != "" {
		sumWhere += " AND " + k.SumExtra
	}
	if err := s.DB.WithContext(ctx).Raw(
		"SELECT COALESCE(SUM("+k.ValueCol+"), 0) FROM "+k.Table+" WHERE "+sumWhere, args...,
	).Scan(&stat.Total).Error; err != nil {
		return stat, err
	}

	return stat, nil
}

// TopDonors xếp hạng theo tổng giá trị đóng góp cả ba loại, giảm dần.
// Số lượt đếm mọi bản ghi, tổng tiền mặt chỉ cộng VND.
func (s *AggregationService) TopDonors(ctx context.Context, rng DateRange, limit int) ([]TopDonor, error) {
	var sb strings.Builder
	var args []interface{}

	sb.WriteString(`SELECT d.donor_id, d.donor_full_name, d.donor_type, d.donor_tier, `)
	sb.WriteString(`COALESCE(c.total, 0) + COALESCE(i.total, 0) + COALESCE(v.total, 0) AS total_value, `)
	sb.WriteString(`COALESCE(c.cnt, 0) + COALESCE(i.cnt, 0) + COALESCE(v.cnt, 0) AS donation_count `)
	sb.WriteString(`FROM donors d`)

	for _, part := range []struct {
		alias string
		k     kindSpec
	}{
		{"c", cashKind},
		{"i", inKindKind},
		{"v", volunteerKind},
	} {
		where, kindArgs := kindFilter(part.k, rng)
		sumExpr := "SUM(" + part.k.ValueCol + ")"
		if part.k.SumExtra != "" {
			sumExpr = "SUM(CASE WHEN " + part.k.SumExtra + " THEN " + part.k.ValueCol + " ELSE 0 END)"
		}
		sb.WriteString(" LEFT JOIN (SELECT " + part.k.DonorCol + " AS donor_id, ")
		sb.WriteString(sumExpr + " AS total, COUNT(*) AS cnt FROM " + part.k.Table)
		sb.WriteString(" WHERE " + where + " GROUP BY " + part.k.DonorCol + ") " + part.alias)
		sb.WriteString(" ON " + part.alias + ".donor_id = d.donor_id")
		args = append(args, kindArgs...)
	}

	sb.WriteString(" WHERE d.deleted_at IS NULL ORDER BY total_value DESC LIMIT ?")
	args = append(args, limit)

	var top []TopDonor
	if err := s.DB.WithContext(ctx).Raw(sb.String(), args...).Scan(&top).Error; err != nil {
		return nil, err
	}
	return top, nil
}

// MonthlyTrends trả về mỗi tháng một điểm, kể cả tháng không có dữ liệu.
// Mặc định 6 tháng gần nhất tính cả tháng hiện tại.
func (s *AggregationService) MonthlyTrends(ctx context.Context, start, end *time.Time) ([]TrendPoint, error) {
	now := time.Now()
	first := startOfMonth(now.AddDate(0, -5, 0))
	last := startOfMonth(now)
	if start != nil {
		first = startOfMonth(*start)
	}
	if end != nil {
		last = startOfMonth(*end)
	}
	if last.Before(first) {
		first, last = last, first
	}

	var points []TrendPoint
	for m := first; !m.After(last); m = m.AddDate(0, 1, 0) {
		from := m
		to := m.AddDate(0, 1, 0).Add(-time.Nanosecond)
		rng := DateRange{From: &from, To: &to}

		point := TrendPoint{Month: m.Format("01/2006")}
		for _, k := range allKinds {
			stat, err := s.kindStat(ctx, k, rng)
			if err != nil {
				return nil, err
			}
			switch k.Key {
			case cashKind.Key:
				point.Cash = stat.Total
			case inKindKind.Key:
				point.InKind = stat.Total
			case volunteerKind.Key:
				point.Volunteer = stat.Total
			}
			point.Total += stat.Total
		}
		points = append(points, point)
	}
	return points, nil
}

func kindFilter(k kindSpec, rng DateRange) (string, []interface{}) {
	where := "deleted_at IS NULL"
	var args []interface{}
	if rng.From != nil {
		where += " AND " + k.DateCol + " >= ?"
		args = append(args, *rng.From)
	}
	if rng.To != nil {
		where += " AND " + k.DateCol + " <= ?"
		args = append(args, *rng.To)
	}
	return where, args
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
