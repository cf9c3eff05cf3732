package repository

import (
	"context"

	"github.com/deserts-microservice/internal/domain"
)

// StatsRepository определяет доступ к агрегированной статистике по данным
type StatsRepository interface {
	// GetStatistics возвращает статистику по census-данным и локациям объектов
	GetStatistics(ctx context.Context) (*domain.Statistics, error)
}
