package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/deserts-microservice/internal/domain"
	"github.com/deserts-microservice/internal/usecase"
)

func TestDashboardUseCase_Render(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	mockSessions := &MockSessionRepository{}
	mockCensus := &MockCensusRepository{}
	mockFacility := &MockFacilityRepository{}
	mockCache := &MockCacheRepository{}

	sessionUC := usecase.NewSessionUseCase(mockSessions, logger, 12*time.Hour)
	desertUC := usecase.NewDesertUseCase(mockCensus, mockCache, logger, time.Hour, 24*time.Hour)
	mapUC := usecase.NewMapUseCase(mockCensus, mockFacility, logger)
	uc := usecase.NewDashboardUseCase(sessionUC, desertUC, mapUC, "https://example.org", logger)

	selection := &domain.Selection{
		FacilityName:           "hospitals",
		StateName:              "Georgia",
		PovertyThreshold:       20,
		UrbanDistanceThreshold: 2,
		RuralDistanceThreshold: 10,
		ShowDeserts:            true,
	}

	blockgroups := []*domain.Blockgroup{
		testBlockgroup("a", domain.RacialLabelWhite, 40, true, 5),
		testBlockgroup("b", domain.RacialLabelBlack, 10, true, 1),
	}

	mockSessions.On("Get", ctx, "s1").Return(selection, nil)
	mockCache.On("Get", ctx, mock.Anything).Return(nil, nil)
	mockCache.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	mockCensus.On("GetBlockgroups", ctx, "13").Return(blockgroups, nil)
	mockCensus.On("GetStateBounds", ctx, "13").Return(&domain.BoundingBox{
		MinLat: 30.3, MinLon: -85.6, MaxLat: 35.0, MaxLon: -80.8,
	}, nil)

	dashboard, err := uc.Render(ctx, "s1")

	assert.NoError(t, err)
	assert.Equal(t, "s1", dashboard.SessionID)
	assert.Equal(t, "Hospital deserts in Georgia", dashboard.Title)
	assert.Equal(t, "Based on distances to hospitals", dashboard.Subtitle)
	assert.Equal(t, "2 blockgroups in Georgia", dashboard.TotalCaption)
	assert.Equal(t, "1 blockgroups classified as hospital deserts", dashboard.DesertCaption)
	assert.NotEmpty(t, dashboard.Message)

	assert.NotNil(t, dashboard.Analysis)
	assert.Equal(t, 1, dashboard.Analysis.DesertBlockgroups)

	assert.NotNil(t, dashboard.Map)
	assert.Len(t, dashboard.Map.Blockgroups.Features, 1)

	assert.Len(t, dashboard.Navigation, 2)
	assert.Equal(t, "https://example.org/explanation", dashboard.Navigation[0].URL)
	assert.Equal(t, "https://example.org/suggesting-new-facilities", dashboard.Navigation[1].URL)
}
