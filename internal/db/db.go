package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/bistro-systems/table-reserve/internal/config"
	"github.com/bistro-systems/table-reserve/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	SeedTables(db)

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Table{},
		&models.Reservation{},
		&models.AuditLog{},
	)
}

// SeedTables creates the default dining-room layout on an empty database.
func SeedTables(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Table{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	seats := []int{2, 2, 4, 4, 4, 6, 6, 8}
	for i, s := range seats {
		db.Create(&models.Table{Number: i + 1, Seats: s})
	}
}
