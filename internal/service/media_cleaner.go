package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"campaign-space-api/internal/metrics"
	"campaign-space-api/internal/repository"
)

// MediaCleaner deletes stored objects best-effort. Failures never block the
// caller; the key is recorded so the cleanup job can retry it later.
type MediaCleaner struct {
	s3Client   S3Client
	orphanRepo repository.OrphanedMediaRepository
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewMediaCleaner creates a new media cleaner
func NewMediaCleaner(s3Client S3Client, orphanRepo repository.OrphanedMediaRepository, m *metrics.Metrics, logger *zap.Logger) *MediaCleaner {
	return &MediaCleaner{
		s3Client:   s3Client,
		orphanRepo: orphanRepo,
		metrics:    m,
		logger:     logger,
	}
}

// DeleteKeys removes the given storage keys, recording any that fail
func (c *MediaCleaner) DeleteKeys(ctx context.Context, keys []string) {
	for _, key := range keys {
		if key == "" {
			continue
		}

		start := time.Now()
		err := c.s3Client.DeleteFile(ctx, key)
		if c.metrics != nil {
			c.metrics.RecordStorageOperation("delete", time.Since(start), err)
		}
		if err == nil {
			continue
		}

		c.logger.Warn("Failed to delete media object, recording for retry",
			zap.String("key", key),
			zap.Error(err),
		)
		if recordErr := c.orphanRepo.Record(ctx, key); recordErr != nil {
			c.logger.Error("Failed to record orphaned media key",
				zap.String("key", key),
				zap.Error(recordErr),
			)
		}
	}
}
