package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"campaign-space-api/internal/repository"
)

const viewCounterKeyPrefix = "profile_views:"

// ViewCounter accumulates profile view increments in Redis and flushes them
// to the database on an interval. Without Redis every view hits the
// database directly.
type ViewCounter struct {
	redisClient   *redis.Client
	characterRepo repository.CharacterRepository
	logger        *zap.Logger
	interval      time.Duration
	done          chan struct{}
}

// NewViewCounter creates a view counter. redisClient may be nil.
func NewViewCounter(redisClient *redis.Client, characterRepo repository.CharacterRepository, logger *zap.Logger) *ViewCounter {
	return &ViewCounter{
		redisClient:   redisClient,
		characterRepo: characterRepo,
		logger:        logger,
		interval:      time.Minute,
		done:          make(chan struct{}),
	}
}

// Record counts one profile view and returns the resulting total.
// baseViews is the persisted counter read from the character row.
func (v *ViewCounter) Record(ctx context.Context, characterID uuid.UUID, baseViews int64) (int64, error) {
	if v.redisClient != nil {
		pending, err := v.redisClient.Incr(ctx, viewCounterKeyPrefix+characterID.String()).Result()
		if err == nil {
			return baseViews + pending, nil
		}
		v.logger.Warn("Redis view increment failed, falling back to database",
			zap.String("character_id", characterID.String()),
			zap.Error(err),
		)
	}

	return v.characterRepo.IncrementProfileViews(ctx, characterID, 1)
}

// Start begins the periodic flush loop. No-op without Redis.
func (v *ViewCounter) Start() {
	if v.redisClient == nil {
		return
	}

	go func() {
		ticker := time.NewTicker(v.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				v.flush(context.Background())
			case <-v.done:
				return
			}
		}
	}()
}

// Stop flushes pending counts and stops the loop
func (v *ViewCounter) Stop() {
	if v.redisClient == nil {
		return
	}
	close(v.done)
	v.flush(context.Background())
}

// flush drains the pending counters into the characters table
func (v *ViewCounter) flush(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var cursor uint64
	for {
		keys, next, err := v.redisClient.Scan(ctx, cursor, viewCounterKeyPrefix+"*", 100).Result()
		if err != nil {
			v.logger.Error("Failed to scan pending view counters", zap.Error(err))
			return
		}

		for _, key := range keys {
			v.flushKey(ctx, key)
		}

		cursor = next
		if cursor == 0 {
			return
		}
	}
}

func (v *ViewCounter) flushKey(ctx context.Context, key string) {
	characterID, err := uuid.Parse(strings.TrimPrefix(key, viewCounterKeyPrefix))
	if err != nil {
		v.logger.Warn("Dropping malformed view counter key", zap.String("key", key))
		v.redisClient.Del(ctx, key)
		return
	}

	count, err := v.redisClient.GetDel(ctx, key).Int64()
	if err != nil {
		if err != redis.Nil {
			v.logger.Error("Failed to drain view counter", zap.String("key", key), zap.Error(err))
		}
		return
	}
	if count == 0 {
		return
	}

	if _, err := v.characterRepo.IncrementProfileViews(ctx, characterID, count); err != nil {
		v.logger.Error("Failed to persist view count",
			zap.String("character_id", characterID.String()),
			zap.Int64("count", count),
			zap.Error(err),
		)
	}
}
