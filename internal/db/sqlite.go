package db

import (
	"github.com/copy2card/copy2card/internal/db/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB initializes the SQLite database connection and runs migrations.
func InitDB(dbPath string) (*gorm.DB, error) {
	database, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// SQLite allows a single writer; cap the pool so concurrent credit
	// mutations queue at the driver instead of failing with SQLITE_BUSY.
	sqlDB, err := database.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	// Auto-migrate all models
	if err := database.AutoMigrate(
		&models.Account{},
		&models.Session{},
		&models.CreditBalance{},
		&models.WebhookEvent{},
	); err != nil {
		return nil, err
	}

	return database, nil
}
