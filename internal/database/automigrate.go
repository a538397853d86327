package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"campaign-space-api/internal/domain"
)

// modelInfo holds information about a domain model and its table name
type modelInfo struct {
	model     interface{}
	tableName string
}

// AutoMigrate runs GORM auto-migration for all domain models
// It automatically creates tables, indexes, and foreign key constraints
// based on the struct definitions in the domain package
func AutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&domain.Character{},
		&domain.Comment{},
		&domain.Album{},
		&domain.Photo{},
		&domain.PhotoLike{},
		&domain.PhotoTag{},
		&domain.PhotoComment{},
		&domain.Playlist{},
		&domain.Song{},
		&domain.OrphanedMedia{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}

	return nil
}

// SafeAutoMigrate runs GORM auto-migration safely by checking table existence first
// It handles both fresh installations and existing databases
// For existing tables, it only updates schema differences (adds columns, indexes)
// For new tables, it creates them from scratch
func SafeAutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	migrator := db.Migrator()

	models := []modelInfo{
		{&domain.Character{}, "characters"},
		{&domain.Comment{}, "comments"},
		{&domain.Album{}, "albums"},
		{&domain.Photo{}, "photos"},
		{&domain.PhotoLike{}, "photo_likes"},
		{&domain.PhotoTag{}, "photo_tags"},
		{&domain.PhotoComment{}, "photo_comments"},
		{&domain.Playlist{}, "playlists"},
		{&domain.Song{}, "songs"},
		{&domain.OrphanedMedia{}, "orphaned_media"},
	}

	logger.Info("Starting safe auto-migration",
		zap.Int("total_models", len(models)),
	)

	for _, m := range models {
		tableExists := migrator.HasTable(m.model)

		if err := db.AutoMigrate(m.model); err != nil {
			logger.Error("Failed to migrate table",
				zap.String("table", m.tableName),
				zap.Bool("table_existed", tableExists),
				zap.Error(err),
			)
			return fmt.Errorf("failed to migrate table %s: %w", m.tableName, err)
		}

		logger.Info("Successfully migrated table",
			zap.String("table", m.tableName),
			zap.Bool("was_existing", tableExists),
		)
	}

	logger.Info("Safe auto-migration completed successfully",
		zap.Int("tables_migrated", len(models)),
	)

	return nil
}

// SafeAutoMigrateWithRetry runs SafeAutoMigrate with retry logic
// It attempts migration up to maxRetries times with linear backoff
func SafeAutoMigrateWithRetry(db *gorm.DB, logger *zap.Logger, maxRetries int) error {
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = SafeAutoMigrate(db, logger)
		if err == nil {
			return nil
		}

		if attempt < maxRetries {
			backoffDuration := time.Duration(attempt) * time.Second
			logger.Warn("Migration attempt failed, retrying...",
				zap.Int("attempt", attempt),
				zap.Int("max_retries", maxRetries),
				zap.Duration("backoff", backoffDuration),
				zap.Error(err),
			)
			time.Sleep(backoffDuration)
		}
	}

	return fmt.Errorf("migration failed after %d attempts: %w", maxRetries, err)
}
