package configs

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

var (
	JWTSecret string
	RedisAddr string

	SESRegion    string
	SESAccessKey string
	SESSecretKey string
	SESSender    string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Không tìm thấy file .env, dùng ENV của hệ thống")
		} else {
			log.Println("✅ Đã nạp file .env")
		}
	} else {
		log.Println("🚀 Running in Railway, dùng ENV của hệ thống")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	RedisAddr = GetEnv("REDIS_ADDR")

	SESRegion = GetEnv("SES_REGION", "ap-southeast-1")
	SESAccessKey = GetEnv("SES_ACCESS_KEY")
	SESSecretKey = GetEnv("SES_SECRET_KEY")
	SESSender = GetEnv("SES_SENDER")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET chưa được set!")
	}
	if RedisAddr == "" {
		log.Println("⚠️ REDIS_ADDR chưa được set, dashboard cache tắt")
	}
	if SESAccessKey == "" {
		log.Println("⚠️ SES chưa cấu hình, gửi email chỉ ghi log")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[INFO] "+msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[WARN] "+msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[ERROR] "+msg, data...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	if err != nil {
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	} else if elapsed > l.SlowThreshold {
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
