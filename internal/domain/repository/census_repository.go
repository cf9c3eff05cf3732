package repository

import (
	"context"

	"github.com/deserts-microservice/internal/domain"
)

// CensusRepository определяет доступ к census-данным штата
type CensusRepository interface {
	// GetBlockgroups возвращает blockgroups штата с расстояниями до объектов
	GetBlockgroups(ctx context.Context, stateFIPS string) ([]*domain.Blockgroup, error)

	// GetStateBounds возвращает bounding box штата по его blockgroups
	GetStateBounds(ctx context.Context, stateFIPS string) (*domain.BoundingBox, error)
}
