package repository

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"campaign-space-api/internal/domain"
)

func setupOrphanedMediaTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	db.Exec(`CREATE TABLE orphaned_media (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		storage_key TEXT NOT NULL UNIQUE,
		attempts INTEGER NOT NULL DEFAULT 0
	)`)

	return db
}

func TestOrphanedMediaRepository_Record_Idempotent(t *testing.T) {
	db := setupOrphanedMediaTestDB(t)
	repo := NewOrphanedMediaRepository(db)
	ctx := context.Background()

	if err := repo.Record(ctx, "campaign/photos/lost.png"); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := repo.Record(ctx, "campaign/photos/lost.png"); err != nil {
		t.Fatalf("Record() second call error = %v", err)
	}

	var count int64
	db.Model(&domain.OrphanedMedia{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 tracked key after re-recording, got %d", count)
	}
}

func TestOrphanedMediaRepository_FindBatch(t *testing.T) {
	db := setupOrphanedMediaTestDB(t)
	repo := NewOrphanedMediaRepository(db)
	ctx := context.Background()

	now := time.Now()
	for i, key := range []string{"campaign/photos/a.png", "campaign/photos/b.png", "campaign/photos/c.png"} {
		db.Create(&domain.OrphanedMedia{
			BaseModel:  domain.BaseModel{CreatedAt: now.Add(time.Duration(i) * time.Minute), UpdatedAt: now},
			StorageKey: key,
		})
	}

	batch, err := repo.FindBatch(ctx, 2)
	if err != nil {
		t.Fatalf("FindBatch() error = %v", err)
	}
	if len(batch) != 2 {
		t.Fatalf("FindBatch() returned %d entries, want 2", len(batch))
	}
	if batch[0].StorageKey != "campaign/photos/a.png" || batch[1].StorageKey != "campaign/photos/b.png" {
		t.Error("expected the oldest keys first")
	}
}

func TestOrphanedMediaRepository_IncrementAttempts(t *testing.T) {
	db := setupOrphanedMediaTestDB(t)
	repo := NewOrphanedMediaRepository(db)
	ctx := context.Background()

	media := &domain.OrphanedMedia{StorageKey: "campaign/photos/stuck.png"}
	db.Create(media)

	if err := repo.IncrementAttempts(ctx, media.ID); err != nil {
		t.Fatalf("IncrementAttempts() error = %v", err)
	}
	if err := repo.IncrementAttempts(ctx, media.ID); err != nil {
		t.Fatalf("IncrementAttempts() error = %v", err)
	}

	var found domain.OrphanedMedia
	db.First(&found, "id = ?", media.ID)
	if found.Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", found.Attempts)
	}
}

func TestOrphanedMediaRepository_Delete(t *testing.T) {
	db := setupOrphanedMediaTestDB(t)
	repo := NewOrphanedMediaRepository(db)
	ctx := context.Background()

	media := &domain.OrphanedMedia{StorageKey: "campaign/photos/gone.png"}
	db.Create(media)

	if err := repo.Delete(ctx, media.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	batch, err := repo.FindBatch(ctx, 10)
	if err != nil {
		t.Fatalf("FindBatch() error = %v", err)
	}
	if len(batch) != 0 {
		t.Errorf("expected no tracked keys after delete, got %d", len(batch))
	}
}
