package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"pixelforge/internal/models"
)

// Migrate creates or upgrades the users, images and integration_tokens tables.
func Migrate(databaseURL string, logger Logger) error {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("migration sql handle: %w", err)
	}
	defer sqlDB.Close()

	tables := models.All()
	if err := db.AutoMigrate(tables...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	logger.Info().Int("tables", len(tables)).Msg("schema migrated")
	return nil
}
