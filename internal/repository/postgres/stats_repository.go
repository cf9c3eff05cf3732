package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/deserts-microservice/internal/domain"
	"github.com/deserts-microservice/internal/domain/repository"
	"github.com/deserts-microservice/internal/pkg/utils"
	"go.uber.org/zap"
)

type statsRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewStatsRepository создает новый экземпляр stats repository
func NewStatsRepository(db *DB, logger *zap.Logger) repository.StatsRepository {
	return &statsRepository{
		db:     db,
		logger: logger,
	}
}

// GetStatistics возвращает агрегированную статистику по загруженным данным
func (r *statsRepository) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	stats := &domain.Statistics{
		LastUpdated: time.Now(),
		DataVersion: "1.0",
	}

	censusStats, err := r.getCensusStats(ctx)
	if err != nil {
		r.logger.Error("failed to get census stats", zap.Error(err))
		return nil, fmt.Errorf("get census stats: %w", err)
	}
	stats.Census = *censusStats

	facilityStats, err := r.getFacilityStats(ctx)
	if err != nil {
		r.logger.Error("failed to get facility stats", zap.Error(err))
		return nil, fmt.Errorf("get facility stats: %w", err)
	}
	stats.Facilities = *facilityStats

	coverage, err := r.getCoverageStats(ctx)
	if err != nil {
		r.logger.Error("failed to get coverage stats", zap.Error(err))
		return nil, fmt.Errorf("get coverage stats: %w", err)
	}
	stats.Coverage = *coverage

	return stats, nil
}

// getCensusStats получает статистику по blockgroups
func (r *statsRepository) getCensusStats(ctx context.Context) (*domain.CensusStats, error) {
	stats := &domain.CensusStats{
		ByState: make(map[string]int),
	}

	query := `
		SELECT
			state_fips,
			COUNT(*) AS count,
			COUNT(*) FILTER (WHERE urban) AS urban_count
		FROM blockgroups
		GROUP BY state_fips
		ORDER BY state_fips
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query census stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var stateFIPS string
		var count, urbanCount int
		if err := rows.Scan(&stateFIPS, &count, &urbanCount); err != nil {
			return nil, fmt.Errorf("scan census stats: %w", err)
		}

		stats.ByState[stateFIPS] = count
		stats.TotalBlockgroups += count
		stats.UrbanBlockgroups += urbanCount
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("census stats rows error: %w", err)
	}

	stats.RuralBlockgroups = stats.TotalBlockgroups - stats.UrbanBlockgroups

	return stats, nil
}

// getFacilityStats получает статистику по локациям объектов
func (r *statsRepository) getFacilityStats(ctx context.Context) (*domain.FacilityStats, error) {
	stats := &domain.FacilityStats{
		ByFacility: make(map[string]int),
	}

	query := `
		SELECT
			facility_name,
			COUNT(*) AS count
		FROM facility_locations
		GROUP BY facility_name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query facility stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var facilityName string
		var count int
		if err := rows.Scan(&facilityName, &count); err != nil {
			return nil, fmt.Errorf("scan facility stats: %w", err)
		}

		stats.ByFacility[facilityName] = count
		stats.TotalLocations += count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("facility stats rows error: %w", err)
	}

	return stats, nil
}

// getCoverageStats получает покрытие территории загруженными данными
func (r *statsRepository) getCoverageStats(ctx context.Context) (*domain.CoverageStats, error) {
	stats := &domain.CoverageStats{}

	query := `
		SELECT
			MIN(lat) AS min_lat,
			MAX(lat) AS max_lat,
			MIN(lon) AS min_lon,
			MAX(lon) AS max_lon,
			COUNT(DISTINCT state_fips) AS states
		FROM blockgroups
	`

	err := r.db.QueryRowContext(ctx, query).Scan(
		&stats.BBoxMinLat,
		&stats.BBoxMaxLat,
		&stats.BBoxMinLon,
		&stats.BBoxMaxLon,
		&stats.States,
	)
	if err != nil {
		return nil, fmt.Errorf("query coverage stats: %w", err)
	}

	stats.DiagonalMiles = utils.HaversineDistanceMiles(
		stats.BBoxMinLat, stats.BBoxMinLon,
		stats.BBoxMaxLat, stats.BBoxMaxLon,
	)

	return stats, nil
}
