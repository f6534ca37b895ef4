package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatVND(t *testing.T) {
	assert.Equal(t, "0 ₫", FormatVND(0))
	assert.Equal(t, "500 ₫", FormatVND(500))
	assert.Equal(t, "1.000 ₫", FormatVND(1000))
	assert.Equal(t, "50.000.000 ₫", FormatVND(50_000_000))
	assert.Equal(t, "-1.234.567 ₫", FormatVND(-1_234_567))
	// phần lẻ bị cắt
	assert.Equal(t, "99 ₫", FormatVND(99.9))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 1, 15, 13, 45, 0, 0, time.UTC)
	assert.Equal(t, "15/01/2024", FormatDate(d))
}
