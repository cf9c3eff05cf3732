package postgres

import (
	"context"
	"fmt"

	"github.com/deserts-microservice/internal/domain"
	"github.com/deserts-microservice/internal/domain/repository"
	"go.uber.org/zap"
)

type censusRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewCensusRepository создает новый экземпляр census repository
func NewCensusRepository(db *DB, logger *zap.Logger) repository.CensusRepository {
	return &censusRepository{
		db:     db,
		logger: logger,
	}
}

// GetBlockgroups возвращает blockgroups штата вместе с предвычисленными
// расстояниями до каждого типа объектов
func (r *censusRepository) GetBlockgroups(ctx context.Context, stateFIPS string) ([]*domain.Blockgroup, error) {
	query := `
		SELECT
			geoid,
			state_fips,
			lat,
			lon,
			racial_majority,
			poverty_rate,
			urban
		FROM blockgroups
		WHERE state_fips = $1
		ORDER BY geoid
	`

	rows, err := r.db.QueryContext(ctx, query, stateFIPS)
	if err != nil {
		return nil, fmt.Errorf("query blockgroups: %w", err)
	}
	defer rows.Close()

	byGEOID := make(map[string]*domain.Blockgroup)
	blockgroups := make([]*domain.Blockgroup, 0)

	for rows.Next() {
		bg := &domain.Blockgroup{
			Distances: make(map[string]float64),
		}
		var majority string
		if err := rows.Scan(
			&bg.GEOID,
			&bg.StateFIPS,
			&bg.Lat,
			&bg.Lon,
			&majority,
			&bg.PovertyRate,
			&bg.Urban,
		); err != nil {
			return nil, fmt.Errorf("scan blockgroup: %w", err)
		}
		bg.RacialMajority = domain.RacialLabel(majority)

		byGEOID[bg.GEOID] = bg
		blockgroups = append(blockgroups, bg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("blockgroups rows error: %w", err)
	}

	if err := r.loadDistances(ctx, stateFIPS, byGEOID); err != nil {
		return nil, err
	}

	r.logger.Debug("Blockgroups loaded",
		zap.String("state_fips", stateFIPS),
		zap.Int("count", len(blockgroups)),
	)

	return blockgroups, nil
}

// loadDistances подгружает расстояния до объектов для уже прочитанных blockgroups
func (r *censusRepository) loadDistances(ctx context.Context, stateFIPS string, byGEOID map[string]*domain.Blockgroup) error {
	query := `
		SELECT
			d.geoid,
			d.distance_label,
			d.distance_miles
		FROM blockgroup_distances d
		JOIN blockgroups b ON b.geoid = d.geoid
		WHERE b.state_fips = $1
	`

	rows, err := r.db.QueryContext(ctx, query, stateFIPS)
	if err != nil {
		return fmt.Errorf("query blockgroup distances: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var geoid, label string
		var distance float64
		if err := rows.Scan(&geoid, &label, &distance); err != nil {
			return fmt.Errorf("scan blockgroup distance: %w", err)
		}

		if bg, ok := byGEOID[geoid]; ok {
			bg.Distances[label] = distance
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("blockgroup distances rows error: %w", err)
	}

	return nil
}

// GetStateBounds возвращает bounding box штата по координатам его blockgroups
func (r *censusRepository) GetStateBounds(ctx context.Context, stateFIPS string) (*domain.BoundingBox, error) {
	query := `
		SELECT
			MIN(lat) AS min_lat,
			MIN(lon) AS min_lon,
			MAX(lat) AS max_lat,
			MAX(lon) AS max_lon
		FROM blockgroups
		WHERE state_fips = $1
	`

	var bounds domain.BoundingBox
	err := r.db.QueryRowContext(ctx, query, stateFIPS).Scan(
		&bounds.MinLat,
		&bounds.MinLon,
		&bounds.MaxLat,
		&bounds.MaxLon,
	)
	if err != nil {
		return nil, fmt.Errorf("query state bounds: %w", err)
	}

	return &bounds, nil
}
