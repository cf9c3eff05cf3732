package repository

import (
	"context"

	"github.com/deserts-microservice/internal/domain"
)

// FacilityRepository определяет доступ к локациям объектов и ячейкам Вороного
type FacilityRepository interface {
	// GetLocations возвращает локации объектов данного типа внутри bounding box;
	// nil bounds = без ограничения
	GetLocations(ctx context.Context, facilityName string, bounds *domain.BoundingBox) ([]*domain.FacilityLocation, error)

	// GetVoronoiCells возвращает предвычисленные ячейки Вороного для пары (тип, штат)
	GetVoronoiCells(ctx context.Context, facilityName, stateFIPS string) ([]*domain.VoronoiCell, error)
}
