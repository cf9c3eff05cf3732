package usecase

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/deserts-microservice/internal/domain"
	"github.com/deserts-microservice/internal/domain/repository"
	"github.com/deserts-microservice/internal/pkg/errors"
)

const statsCacheKey = "stats:global"

// StatsUseCase - статистика по загруженным данным с кешированием
type StatsUseCase struct {
	statsRepo repository.StatsRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

func NewStatsUseCase(
	statsRepo repository.StatsRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *StatsUseCase {
	return &StatsUseCase{
		statsRepo: statsRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// GetStatistics возвращает статистику, сперва пробуя кеш
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	if cached, err := uc.cacheRepo.Get(ctx, statsCacheKey); err == nil && cached != nil {
		var stats domain.Statistics
		if err := json.Unmarshal(cached, &stats); err == nil {
			return &stats, nil
		}
		uc.logger.Warn("Failed to unmarshal cached statistics")
	}

	stats, err := uc.statsRepo.GetStatistics(ctx)
	if err != nil {
		uc.logger.Error("Failed to load statistics", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if data, err := json.Marshal(stats); err == nil {
		if err := uc.cacheRepo.Set(ctx, statsCacheKey, data, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache statistics", zap.Error(err))
		}
	}

	return stats, nil
}
