package helper

import (
	"strconv"
	"strings"
	"time"
)

// FormatVND renders an amount the vi-VN way: "50.000.000 ₫".
// Phần lẻ bị cắt — tiền VND không dùng số thập phân.
func FormatVND(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := strconv.FormatInt(int64(amount), 10)

	var b strings.Builder
	pre := len(digits) % 3
	if pre > 0 {
		b.WriteString(digits[:pre])
	}
	for i := pre; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	out := b.String() + " ₫"
	if neg {
		out = "-" + out
	}
	return out
}

// FormatDate renders dd/MM/yyyy như giao diện vi-VN.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}
