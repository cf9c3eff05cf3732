package postgres

import (
	"context"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"

	"github.com/deserts-microservice/internal/domain"
	"github.com/deserts-microservice/internal/domain/repository"
	"github.com/deserts-microservice/internal/pkg/utils"
)

type facilityRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewFacilityRepository создает новый экземпляр facility repository
func NewFacilityRepository(db *DB, logger *zap.Logger) repository.FacilityRepository {
	return &facilityRepository{
		db:     db,
		logger: logger,
	}
}

// GetLocations возвращает локации объектов данного типа внутри bounding box
func (r *facilityRepository) GetLocations(ctx context.Context, facilityName string, bounds *domain.BoundingBox) ([]*domain.FacilityLocation, error) {
	query := `
		SELECT id, facility_name, name, lat, lon
		FROM facility_locations
		WHERE facility_name = $1
	`
	args := []interface{}{facilityName}

	if bounds != nil {
		query += ` AND lat BETWEEN $2 AND $3 AND lon BETWEEN $4 AND $5`
		args = append(args, bounds.MinLat, bounds.MaxLat, bounds.MinLon, bounds.MaxLon)
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query facility locations: %w", err)
	}
	defer rows.Close()

	locations := make([]*domain.FacilityLocation, 0)
	for rows.Next() {
		loc := &domain.FacilityLocation{}
		if err := rows.Scan(&loc.ID, &loc.FacilityName, &loc.Name, &loc.Lat, &loc.Lon); err != nil {
			return nil, fmt.Errorf("scan facility location: %w", err)
		}
		if !utils.ValidateCoordinates(loc.Lat, loc.Lon) {
			r.logger.Warn("Skipping facility location with bad coordinates",
				zap.Int64("id", loc.ID),
				zap.Float64("lat", loc.Lat),
				zap.Float64("lon", loc.Lon),
			)
			continue
		}
		locations = append(locations, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("facility locations rows error: %w", err)
	}

	r.logger.Debug("Facility locations loaded",
		zap.String("facility", facilityName),
		zap.Int("count", len(locations)),
	)

	return locations, nil
}

// GetVoronoiCells возвращает предвычисленные ячейки Вороного.
// Геометрия хранится в jsonb как GeoJSON-полигон.
func (r *facilityRepository) GetVoronoiCells(ctx context.Context, facilityName, stateFIPS string) ([]*domain.VoronoiCell, error) {
	query := `
		SELECT id, facility_name, state_fips, location_name, geometry
		FROM voronoi_cells
		WHERE facility_name = $1 AND state_fips = $2
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, facilityName, stateFIPS)
	if err != nil {
		return nil, fmt.Errorf("query voronoi cells: %w", err)
	}
	defer rows.Close()

	cells := make([]*domain.VoronoiCell, 0)
	for rows.Next() {
		cell := &domain.VoronoiCell{}
		var rawGeometry []byte
		if err := rows.Scan(&cell.ID, &cell.FacilityName, &cell.StateFIPS, &cell.LocationName, &rawGeometry); err != nil {
			return nil, fmt.Errorf("scan voronoi cell: %w", err)
		}

		polygon, err := decodePolygon(rawGeometry)
		if err != nil {
			r.logger.Warn("Skipping voronoi cell with bad geometry",
				zap.Int64("id", cell.ID),
				zap.Error(err),
			)
			continue
		}
		cell.Geometry = polygon

		cells = append(cells, cell)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("voronoi cells rows error: %w", err)
	}

	return cells, nil
}

// decodePolygon разбирает GeoJSON-геометрию и приводит её к полигону
func decodePolygon(raw []byte) (orb.Polygon, error) {
	geom, err := geojson.UnmarshalGeometry(raw)
	if err != nil {
		return nil, fmt.Errorf("unmarshal geometry: %w", err)
	}

	switch g := geom.Geometry().(type) {
	case orb.Polygon:
		return g, nil
	case orb.MultiPolygon:
		if len(g) == 0 {
			return nil, fmt.Errorf("empty multipolygon")
		}
		return g[0], nil
	default:
		return nil, fmt.Errorf("unexpected geometry type %T", g)
	}
}
