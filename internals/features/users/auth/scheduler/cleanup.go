package scheduler

import (
	"log"
	"strconv"
	"time"

	"gorm.io/gorm"

	"quanlytaitro_backend/internals/configs"
	authModel "quanlytaitro_backend/internals/features/users/auth/model"
)

// StartTokenCleanup dọn token hết hạn khỏi blacklist mỗi ngày một lần.
// TOKEN_BLACKLIST_TTL_DAYS giữ thêm một khoảng an toàn sau exp (mặc định 7).
func StartTokenCleanup(db *gorm.DB) {
	ttlDays := 7
	if raw := configs.GetEnv("TOKEN_BLACKLIST_TTL_DAYS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			ttlDays = n
		}
	}

	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		cleanup(db, ttlDays)
		for range ticker.C {
			cleanup(db, ttlDays)
		}
	}()
}

func cleanup(db *gorm.DB, ttlDays int) {
	cutoff := time.Now().AddDate(0, 0, -ttlDays)
	res := db.Unscoped().
		Where("expired_at < ?", cutoff).
		Delete(&authModel.TokenBlacklist{})
	if res.Error != nil {
		log.Println("[ERROR] Dọn token blacklist:", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("[INFO] Đã dọn %d token hết hạn khỏi blacklist", res.RowsAffected)
	}
}
