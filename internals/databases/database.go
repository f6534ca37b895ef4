package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"quanlytaitro_backend/internals/configs"
	cashModel "quanlytaitro_backend/internals/features/donations/cash/model"
	inkindModel "quanlytaitro_backend/internals/features/donations/inkind/model"
	volunteerModel "quanlytaitro_backend/internals/features/donations/volunteer/model"
	donorModel "quanlytaitro_backend/internals/features/donors/model"
	emailModel "quanlytaitro_backend/internals/features/emails/model"
	interactionModel "quanlytaitro_backend/internals/features/interactions/model"
	reminderModel "quanlytaitro_backend/internals/features/reminders/model"
	authModel "quanlytaitro_backend/internals/features/users/auth/model"
	userModel "quanlytaitro_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Kết nối PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=quanlytaitro&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Không kết nối được DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func Migrate() {
	if err := DB.AutoMigrate(
		&userModel.User{},
		&authModel.TokenBlacklist{},
		&donorModel.Donor{},
		&cashModel.DonationCash{},
		&inkindModel.DonationInKind{},
		&volunteerModel.DonationVolunteer{},
		&interactionModel.Interaction{},
		&emailModel.EmailTemplate{},
		&emailModel.EmailLog{},
		&reminderModel.Reminder{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate thất bại: %v", err)
	}
	log.Println("✅ Migrate xong.")
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
