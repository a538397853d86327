// Package job holds the scheduled background jobs.
package job

import (
	"context"

	"go.uber.org/zap"

	"campaign-space-api/internal/client"
	"campaign-space-api/internal/repository"
)

// cleanupBatchSize bounds one sweep so a large backlog cannot stall the job
const cleanupBatchSize = 100

// CleanupJob retries deletion of media files whose remote removal failed
// when their owning record was deleted
type CleanupJob struct {
	orphanRepo repository.OrphanedMediaRepository
	s3Client   client.S3ClientInterface
	logger     *zap.Logger
}

// NewCleanupJob creates a new CleanupJob instance
func NewCleanupJob(
	orphanRepo repository.OrphanedMediaRepository,
	s3Client client.S3ClientInterface,
	logger *zap.Logger,
) *CleanupJob {
	return &CleanupJob{
		orphanRepo: orphanRepo,
		s3Client:   s3Client,
		logger:     logger,
	}
}

// Run executes one sweep over the tracked orphaned media keys.
// Successfully deleted keys are dropped from the table; failures stay
// with a bumped attempt counter for the next sweep.
func (j *CleanupJob) Run() {
	ctx := context.Background()

	batch, err := j.orphanRepo.FindBatch(ctx, cleanupBatchSize)
	if err != nil {
		j.logger.Error("Failed to load orphaned media batch", zap.Error(err))
		return
	}
	if len(batch) == 0 {
		return
	}

	j.logger.Info("Starting orphaned media cleanup", zap.Int("count", len(batch)))

	successCount := 0
	failCount := 0
	for _, media := range batch {
		if err := j.s3Client.DeleteFile(ctx, media.StorageKey); err != nil {
			j.logger.Warn("Failed to delete orphaned media file",
				zap.String("storage_key", media.StorageKey),
				zap.Int("attempts", media.Attempts),
				zap.Error(err),
			)
			if err := j.orphanRepo.IncrementAttempts(ctx, media.ID); err != nil {
				j.logger.Error("Failed to bump orphaned media attempts",
					zap.String("storage_key", media.StorageKey),
					zap.Error(err),
				)
			}
			failCount++
			continue
		}

		if err := j.orphanRepo.Delete(ctx, media.ID); err != nil {
			j.logger.Error("Failed to drop orphaned media record",
				zap.String("storage_key", media.StorageKey),
				zap.Error(err),
			)
			failCount++
			continue
		}
		successCount++
	}

	j.logger.Info("Orphaned media cleanup completed",
		zap.Int("total", len(batch)),
		zap.Int("success", successCount),
		zap.Int("failed", failCount),
	)
}
