package usecase_test

import (
	"context"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/deserts-microservice/internal/domain"
	"github.com/deserts-microservice/internal/pkg/errors"
	"github.com/deserts-microservice/internal/usecase"
	"github.com/deserts-microservice/internal/usecase/dto"
)

func TestMapUseCase_Layers(t *testing.T) {
	ctx := context.Background()

	georgiaBounds := &domain.BoundingBox{
		MinLat: 30.3, MinLon: -85.6, MaxLat: 35.0, MaxLon: -80.8,
	}

	baseReq := dto.MapLayersRequest{
		StateName:              "Georgia",
		FacilityName:           "hospitals",
		PovertyThreshold:       20,
		UrbanDistanceThreshold: 2,
		RuralDistanceThreshold: 10,
	}

	t.Run("all layers disabled returns bounds only", func(t *testing.T) {
		mockCensus := &MockCensusRepository{}
		mockFacility := &MockFacilityRepository{}
		uc := usecase.NewMapUseCase(mockCensus, mockFacility, zap.NewNop())

		mockCensus.On("GetStateBounds", ctx, "13").Return(georgiaBounds, nil)

		result, err := uc.Layers(ctx, baseReq)

		assert.NoError(t, err)
		assert.Equal(t, georgiaBounds, result.Bounds)
		assert.Nil(t, result.Blockgroups)
		assert.Nil(t, result.Facilities)
		assert.Nil(t, result.VoronoiCells)
		mockCensus.AssertNotCalled(t, "GetBlockgroups")
		mockFacility.AssertNotCalled(t, "GetLocations")
	})

	t.Run("desert layer carries demographic properties", func(t *testing.T) {
		mockCensus := &MockCensusRepository{}
		mockFacility := &MockFacilityRepository{}
		uc := usecase.NewMapUseCase(mockCensus, mockFacility, zap.NewNop())

		blockgroups := []*domain.Blockgroup{
			testBlockgroup("desert", domain.RacialLabelBlack, 40, true, 5),
			testBlockgroup("not-desert", domain.RacialLabelWhite, 5, true, 5),
		}

		mockCensus.On("GetStateBounds", ctx, "13").Return(georgiaBounds, nil)
		mockCensus.On("GetBlockgroups", ctx, "13").Return(blockgroups, nil)

		req := baseReq
		req.ShowDeserts = true
		result, err := uc.Layers(ctx, req)

		assert.NoError(t, err)
		assert.Len(t, result.Blockgroups.Features, 1)

		feature := result.Blockgroups.Features[0]
		assert.Equal(t, "desert", feature.Properties["geoid"])
		assert.Equal(t, string(domain.RacialLabelBlack), feature.Properties["racial_majority"])
		assert.Equal(t, "Majority Black", feature.Properties["legend"])
	})

	t.Run("pharmacy group draws one layer per chain", func(t *testing.T) {
		mockCensus := &MockCensusRepository{}
		mockFacility := &MockFacilityRepository{}
		uc := usecase.NewMapUseCase(mockCensus, mockFacility, zap.NewNop())

		mockCensus.On("GetStateBounds", ctx, "13").Return(georgiaBounds, nil)
		mockFacility.On("GetLocations", ctx, "cvs", mock.Anything).
			Return([]*domain.FacilityLocation{{Name: "CVS #1", Lat: 33.7, Lon: -84.4}}, nil)
		mockFacility.On("GetLocations", ctx, "walgreens", mock.Anything).
			Return([]*domain.FacilityLocation{}, nil)
		mockFacility.On("GetLocations", ctx, "walmart", mock.Anything).
			Return([]*domain.FacilityLocation{}, nil)

		req := baseReq
		req.FacilityName = domain.PharmacyGroupName
		req.ShowFacilityLocations = true
		result, err := uc.Layers(ctx, req)

		assert.NoError(t, err)
		assert.Len(t, result.Facilities, 3)
		assert.Equal(t, "cvs", result.Facilities[0].FacilityName)
		assert.Len(t, result.Facilities[0].Locations.Features, 1)
		mockFacility.AssertNumberOfCalls(t, "GetLocations", 3)
	})

	t.Run("single facility draws one layer", func(t *testing.T) {
		mockCensus := &MockCensusRepository{}
		mockFacility := &MockFacilityRepository{}
		uc := usecase.NewMapUseCase(mockCensus, mockFacility, zap.NewNop())

		mockCensus.On("GetStateBounds", ctx, "13").Return(georgiaBounds, nil)
		mockFacility.On("GetLocations", ctx, "hospitals", mock.Anything).
			Return([]*domain.FacilityLocation{}, nil)

		req := baseReq
		req.ShowFacilityLocations = true
		result, err := uc.Layers(ctx, req)

		assert.NoError(t, err)
		assert.Len(t, result.Facilities, 1)
		mockFacility.AssertNumberOfCalls(t, "GetLocations", 1)
	})

	t.Run("voronoi layer from precomputed cells", func(t *testing.T) {
		mockCensus := &MockCensusRepository{}
		mockFacility := &MockFacilityRepository{}
		uc := usecase.NewMapUseCase(mockCensus, mockFacility, zap.NewNop())

		cell := &domain.VoronoiCell{
			FacilityName: "hospitals",
			LocationName: "Grady Memorial",
			Geometry: orb.Polygon{
				{{-84.5, 33.6}, {-84.3, 33.6}, {-84.3, 33.8}, {-84.5, 33.8}, {-84.5, 33.6}},
			},
		}

		mockCensus.On("GetStateBounds", ctx, "13").Return(georgiaBounds, nil)
		mockFacility.On("GetVoronoiCells", ctx, "hospitals", "13").
			Return([]*domain.VoronoiCell{cell}, nil)

		req := baseReq
		req.ShowVoronoiCells = true
		result, err := uc.Layers(ctx, req)

		assert.NoError(t, err)
		assert.Len(t, result.VoronoiCells.Features, 1)
		assert.Equal(t, "Grady Memorial", result.VoronoiCells.Features[0].Properties["location_name"])
	})

	t.Run("unknown state", func(t *testing.T) {
		uc := usecase.NewMapUseCase(&MockCensusRepository{}, &MockFacilityRepository{}, zap.NewNop())

		req := baseReq
		req.StateName = "Atlantis"
		_, err := uc.Layers(ctx, req)
		assert.Equal(t, errors.ErrStateNotFound, err)
	})
}
