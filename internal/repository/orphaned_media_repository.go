package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campaign-space-api/internal/domain"
)

// OrphanedMediaRepository defines the interface for orphaned media bookkeeping
type OrphanedMediaRepository interface {
	Record(ctx context.Context, storageKey string) error
	FindBatch(ctx context.Context, limit int) ([]*domain.OrphanedMedia, error)
	IncrementAttempts(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// orphanedMediaRepositoryImpl is the GORM implementation of OrphanedMediaRepository
type orphanedMediaRepositoryImpl struct {
	db *gorm.DB
}

// NewOrphanedMediaRepository creates a new instance of OrphanedMediaRepository
func NewOrphanedMediaRepository(db *gorm.DB) OrphanedMediaRepository {
	return &orphanedMediaRepositoryImpl{db: db}
}

// Record stores a storage key whose remote deletion failed.
// Re-recording an already tracked key is a no-op.
func (r *orphanedMediaRepositoryImpl) Record(ctx context.Context, storageKey string) error {
	media := &domain.OrphanedMedia{StorageKey: storageKey}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "storage_key"}},
			DoNothing: true,
		}).
		Create(media).Error; err != nil {
		return err
	}
	return nil
}

// FindBatch returns the oldest tracked keys up to limit
func (r *orphanedMediaRepositoryImpl) FindBatch(ctx context.Context, limit int) ([]*domain.OrphanedMedia, error) {
	var media []*domain.OrphanedMedia
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Limit(limit).
		Find(&media).Error; err != nil {
		return nil, err
	}
	return media, nil
}

// IncrementAttempts bumps the retry counter after a failed deletion
func (r *orphanedMediaRepositoryImpl) IncrementAttempts(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Model(&domain.OrphanedMedia{}).
		Where("id = ?", id).
		UpdateColumn("attempts", gorm.Expr("attempts + 1")).Error; err != nil {
		return err
	}
	return nil
}

// Delete removes a tracked key once the remote object is gone
func (r *orphanedMediaRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&domain.OrphanedMedia{}, "id = ?", id).Error; err != nil {
		return err
	}
	return nil
}
