package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/deserts-microservice/internal/domain"
	"github.com/deserts-microservice/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

func summaryKey(stateFIPS, facilityName string) string {
	return fmt.Sprintf("summary:%s:%s", stateFIPS, facilityName)
}

// GetSummary получает сводку анализа из кеша
func (r *cacheRepository) GetSummary(ctx context.Context, stateFIPS, facilityName string) (*domain.DesertSummary, error) {
	data, err := r.Get(ctx, summaryKey(stateFIPS, facilityName))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var summary domain.DesertSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		r.logger.Error("Failed to unmarshal summary from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal summary: %w", err)
	}

	return &summary, nil
}

// SetSummary сохраняет сводку анализа в кеше
func (r *cacheRepository) SetSummary(ctx context.Context, summary *domain.DesertSummary, ttl time.Duration) error {
	data, err := json.Marshal(summary)
	if err != nil {
		r.logger.Error("Failed to marshal summary", zap.Error(err))
		return fmt.Errorf("marshal summary: %w", err)
	}

	return r.Set(ctx, summaryKey(summary.StateFIPS, summary.FacilityName), data, ttl)
}
