package usecase

import (
	"context"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"

	"github.com/deserts-microservice/internal/domain"
	"github.com/deserts-microservice/internal/domain/repository"
	"github.com/deserts-microservice/internal/pkg/errors"
	"github.com/deserts-microservice/internal/usecase/dto"
)

// Отступ вокруг границ штата, чтобы маркеры у границы не обрезались
const boundsPadDegrees = 0.1

// MapUseCase - сборка GeoJSON-слоёв карты для текущего выбора
type MapUseCase struct {
	censusRepo   repository.CensusRepository
	facilityRepo repository.FacilityRepository
	logger       *zap.Logger
}

func NewMapUseCase(
	censusRepo repository.CensusRepository,
	facilityRepo repository.FacilityRepository,
	logger *zap.Logger,
) *MapUseCase {
	return &MapUseCase{
		censusRepo:   censusRepo,
		facilityRepo: facilityRepo,
		logger:       logger,
	}
}

// Layers собирает слои карты: маркеры дефицитных зон, локации объектов
// и ячейки Вороного. Выключенный toggle полностью убирает слой из ответа.
func (uc *MapUseCase) Layers(ctx context.Context, req dto.MapLayersRequest) (*dto.MapLayersResponse, error) {
	state, ok := domain.StateByName(req.StateName)
	if !ok {
		return nil, errors.ErrStateNotFound
	}

	facility, ok := domain.FacilityByName(req.FacilityName)
	if !ok {
		return nil, errors.ErrFacilityNotFound
	}

	if err := validateThresholds(req.PovertyThreshold, req.UrbanDistanceThreshold, req.RuralDistanceThreshold); err != nil {
		return nil, err
	}

	bounds, err := uc.censusRepo.GetStateBounds(ctx, state.FIPS)
	if err != nil {
		uc.logger.Error("Failed to load state bounds",
			zap.String("state_fips", state.FIPS),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	response := &dto.MapLayersResponse{Bounds: bounds}

	if req.ShowDeserts {
		layer, err := uc.desertLayer(ctx, state.FIPS, facility, req)
		if err != nil {
			return nil, err
		}
		response.Blockgroups = layer
	}

	if req.ShowFacilityLocations {
		padded := bounds.Pad(boundsPadDegrees)
		layers, err := uc.facilityLayers(ctx, facility, &padded)
		if err != nil {
			return nil, err
		}
		response.Facilities = layers
	}

	if req.ShowVoronoiCells {
		layer, err := uc.voronoiLayer(ctx, facility, state.FIPS)
		if err != nil {
			return nil, err
		}
		response.VoronoiCells = layer
	}

	return response, nil
}

// desertLayer строит слой маркеров дефицитных зон с демографическими свойствами
func (uc *MapUseCase) desertLayer(ctx context.Context, stateFIPS string, facility *domain.Facility, req dto.MapLayersRequest) (*geojson.FeatureCollection, error) {
	blockgroups, err := uc.censusRepo.GetBlockgroups(ctx, stateFIPS)
	if err != nil {
		uc.logger.Error("Failed to load blockgroups",
			zap.String("state_fips", stateFIPS),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	criteria := domain.DesertCriteria{
		PovertyThreshold:       req.PovertyThreshold,
		UrbanDistanceThreshold: req.UrbanDistanceThreshold,
		RuralDistanceThreshold: req.RuralDistanceThreshold,
		DistanceLabel:          facility.DistanceLabel,
	}

	fc := geojson.NewFeatureCollection()
	for _, bg := range blockgroups {
		if !criteria.Matches(bg) {
			continue
		}

		feature := geojson.NewFeature(orb.Point{bg.Lon, bg.Lat})
		feature.Properties["geoid"] = bg.GEOID
		feature.Properties["racial_majority"] = string(bg.RacialMajority)
		feature.Properties["legend"] = bg.RacialMajority.Legend()
		feature.Properties["poverty_rate"] = bg.PovertyRate
		feature.Properties["urban"] = bg.Urban
		fc.Append(feature)
	}

	return fc, nil
}

// facilityLayers строит по слою маркеров на каждый рисуемый тип объекта;
// сводная группа аптек даёт три слоя, по одному на сеть
func (uc *MapUseCase) facilityLayers(ctx context.Context, facility *domain.Facility, bounds *domain.BoundingBox) ([]dto.FacilityLayer, error) {
	drawn := facility.LocationFacilities()
	layers := make([]dto.FacilityLayer, 0, len(drawn))

	for _, f := range drawn {
		locations, err := uc.facilityRepo.GetLocations(ctx, f.Name, bounds)
		if err != nil {
			uc.logger.Error("Failed to load facility locations",
				zap.String("facility", f.Name),
				zap.Error(err))
			return nil, errors.ErrDatabaseError
		}

		fc := geojson.NewFeatureCollection()
		for _, loc := range locations {
			feature := geojson.NewFeature(orb.Point{loc.Lon, loc.Lat})
			feature.Properties["name"] = loc.Name
			feature.Properties["facility_name"] = loc.FacilityName
			fc.Append(feature)
		}

		layers = append(layers, dto.FacilityLayer{
			FacilityName: f.Name,
			DisplayName:  f.DisplayName,
			Locations:    fc,
		})
	}

	return layers, nil
}

// voronoiLayer строит слой предвычисленных ячеек Вороного
func (uc *MapUseCase) voronoiLayer(ctx context.Context, facility *domain.Facility, stateFIPS string) (*geojson.FeatureCollection, error) {
	cells, err := uc.facilityRepo.GetVoronoiCells(ctx, facility.Name, stateFIPS)
	if err != nil {
		uc.logger.Error("Failed to load voronoi cells",
			zap.String("facility", facility.Name),
			zap.String("state_fips", stateFIPS),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	fc := geojson.NewFeatureCollection()
	for _, cell := range cells {
		feature := geojson.NewFeature(cell.Geometry)
		feature.Properties["location_name"] = cell.LocationName
		feature.Properties["facility_name"] = cell.FacilityName
		fc.Append(feature)
	}

	return fc, nil
}
