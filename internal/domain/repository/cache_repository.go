package repository

import (
	"context"
	"time"

	"github.com/deserts-microservice/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу; (nil, nil) при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetSummary получает сводку анализа из кеша; (nil, nil) при промахе
	GetSummary(ctx context.Context, stateFIPS, facilityName string) (*domain.DesertSummary, error)

	// SetSummary сохраняет сводку анализа в кеше
	SetSummary(ctx context.Context, summary *domain.DesertSummary, ttl time.Duration) error
}
