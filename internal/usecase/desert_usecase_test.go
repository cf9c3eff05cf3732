package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/deserts-microservice/internal/domain"
	"github.com/deserts-microservice/internal/pkg/errors"
	"github.com/deserts-microservice/internal/usecase"
	"github.com/deserts-microservice/internal/usecase/dto"
)

func newDesertUseCase(census *MockCensusRepository, cache *MockCacheRepository) *usecase.DesertUseCase {
	return usecase.NewDesertUseCase(census, cache, zap.NewNop(), time.Hour, 24*time.Hour)
}

// testBlockgroup строит blockgroup с расстоянием до больниц
func testBlockgroup(geoid string, label domain.RacialLabel, poverty float64, urban bool, distance float64) *domain.Blockgroup {
	return &domain.Blockgroup{
		GEOID:          geoid,
		StateFIPS:      "13",
		RacialMajority: label,
		PovertyRate:    poverty,
		Urban:          urban,
		Distances:      map[string]float64{"closest_distance_hospitals": distance},
	}
}

func TestComputeDeserts(t *testing.T) {
	uc := newDesertUseCase(&MockCensusRepository{}, &MockCacheRepository{})

	criteria := domain.DesertCriteria{
		PovertyThreshold:       20,
		UrbanDistanceThreshold: 2,
		RuralDistanceThreshold: 10,
		DistanceLabel:          "closest_distance_hospitals",
	}

	blockgroups := []*domain.Blockgroup{
		testBlockgroup("a", domain.RacialLabelWhite, 30, true, 5),   // desert
		testBlockgroup("b", domain.RacialLabelBlack, 30, false, 5),  // rural, too close
		testBlockgroup("c", domain.RacialLabelBlack, 10, true, 5),   // not poor enough
		testBlockgroup("d", domain.RacialLabelBlack, 30, false, 15), // desert
	}

	deserts := uc.ComputeDeserts(blockgroups, criteria)

	assert.Len(t, deserts, 2)
	assert.Equal(t, "a", deserts[0].GEOID)
	assert.Equal(t, "d", deserts[1].GEOID)

	t.Run("input slice not mutated", func(t *testing.T) {
		assert.Len(t, blockgroups, 4)
		again := uc.ComputeDeserts(blockgroups, criteria)
		assert.Equal(t, deserts, again)
	})
}

func TestDemographicData(t *testing.T) {
	uc := newDesertUseCase(&MockCensusRepository{}, &MockCacheRepository{})

	blockgroups := []*domain.Blockgroup{
		testBlockgroup("a", domain.RacialLabelWhite, 30, true, 5),
		testBlockgroup("b", domain.RacialLabelWhite, 30, true, 5),
		testBlockgroup("c", domain.RacialLabelBlack, 30, true, 5),
		testBlockgroup("d", domain.RacialLabel("unexpected"), 30, true, 5),
	}

	demographics := uc.DemographicData(blockgroups)

	assert.Equal(t, len(blockgroups), demographics.Total())
	assert.Equal(t, 2, demographics[domain.RacialLabelWhite])
	assert.Equal(t, 1, demographics[domain.RacialLabelBlack])
	// неизвестная метка сворачивается в other
	assert.Equal(t, 1, demographics[domain.RacialLabelOther])
}

func TestDisproportionatelyAffected(t *testing.T) {
	uc := newDesertUseCase(&MockCensusRepository{}, &MockCacheRepository{})

	t.Run("large fraction gap flags the group", func(t *testing.T) {
		all := domain.Demographics{
			domain.RacialLabelWhite: 80,
			domain.RacialLabelBlack: 20,
		}
		deserts := domain.Demographics{
			domain.RacialLabelWhite: 2,
			domain.RacialLabelBlack: 8,
		}

		affected := uc.DisproportionatelyAffected(all, deserts)
		assert.Equal(t, []domain.RacialLabel{domain.RacialLabelBlack}, affected)
	})

	t.Run("ratio rule flags small overrepresented group", func(t *testing.T) {
		// hispanic: 1% всех, 9% зон: доля в зонах больше 4x, разница меньше 0.1
		all := domain.Demographics{
			domain.RacialLabelWhite:    990,
			domain.RacialLabelHispanic: 10,
		}
		deserts := domain.Demographics{
			domain.RacialLabelWhite:    91,
			domain.RacialLabelHispanic: 9,
		}

		affected := uc.DisproportionatelyAffected(all, deserts)
		assert.Equal(t, []domain.RacialLabel{domain.RacialLabelHispanic}, affected)
	})

	t.Run("fewer than five deserts never flagged", func(t *testing.T) {
		all := domain.Demographics{
			domain.RacialLabelWhite: 100,
			domain.RacialLabelBlack: 4,
		}
		deserts := domain.Demographics{
			domain.RacialLabelBlack: 4,
		}

		assert.Empty(t, uc.DisproportionatelyAffected(all, deserts))
	})

	t.Run("empty deserts aggregate returns empty", func(t *testing.T) {
		all := domain.Demographics{domain.RacialLabelWhite: 100}
		assert.Empty(t, uc.DisproportionatelyAffected(all, domain.Demographics{}))
	})

	t.Run("empty state aggregate returns empty", func(t *testing.T) {
		deserts := domain.Demographics{domain.RacialLabelBlack: 10}
		assert.Empty(t, uc.DisproportionatelyAffected(domain.Demographics{}, deserts))
	})

	t.Run("results follow canonical label order", func(t *testing.T) {
		all := domain.Demographics{
			domain.RacialLabelWhite:    1000,
			domain.RacialLabelBlack:    50,
			domain.RacialLabelHispanic: 50,
		}
		deserts := domain.Demographics{
			domain.RacialLabelBlack:    30,
			domain.RacialLabelHispanic: 30,
		}

		affected := uc.DisproportionatelyAffected(all, deserts)
		assert.Equal(t, []domain.RacialLabel{
			domain.RacialLabelBlack,
			domain.RacialLabelHispanic,
		}, affected)

		// без дубликатов и стабильно между вызовами
		assert.Equal(t, affected, uc.DisproportionatelyAffected(all, deserts))
	})

	t.Run("inputs not mutated", func(t *testing.T) {
		all := domain.Demographics{domain.RacialLabelWhite: 10, domain.RacialLabelBlack: 10}
		deserts := domain.Demographics{domain.RacialLabelBlack: 8}
		uc.DisproportionatelyAffected(all, deserts)

		assert.Equal(t, 20, all.Total())
		assert.Equal(t, 8, deserts.Total())
	})
}

func TestDesertUseCase_Analyze(t *testing.T) {
	ctx := context.Background()

	req := dto.DesertAnalysisRequest{
		StateName:              "Georgia",
		FacilityName:           "hospitals",
		PovertyThreshold:       20,
		UrbanDistanceThreshold: 2,
		RuralDistanceThreshold: 10,
	}

	t.Run("success", func(t *testing.T) {
		mockCensus := &MockCensusRepository{}
		mockCache := &MockCacheRepository{}
		uc := newDesertUseCase(mockCensus, mockCache)

		blockgroups := make([]*domain.Blockgroup, 0, 20)
		for i := 0; i < 10; i++ {
			blockgroups = append(blockgroups,
				testBlockgroup(fmt.Sprintf("w%d", i), domain.RacialLabelWhite, 10, true, 1))
		}
		for i := 0; i < 10; i++ {
			blockgroups = append(blockgroups,
				testBlockgroup(fmt.Sprintf("b%d", i), domain.RacialLabelBlack, 40, false, 20))
		}

		mockCache.On("Get", ctx, mock.Anything).Return(nil, nil)
		mockCache.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		mockCensus.On("GetBlockgroups", ctx, "13").Return(blockgroups, nil)

		result, err := uc.Analyze(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "Georgia", result.State.Name)
		assert.Equal(t, "hospitals", result.Facility.Name)
		assert.Equal(t, 20, result.TotalBlockgroups)
		assert.Equal(t, 10, result.DesertBlockgroups)

		assert.Len(t, result.AffectedGroups, 1)
		callout := result.AffectedGroups[0]
		assert.Equal(t, string(domain.RacialLabelBlack), callout.Label)
		assert.Equal(t, 50.0, callout.PercentAll)
		assert.Equal(t, 100.0, callout.PercentDeserts)
		assert.Contains(t, callout.Message, "Majority Black")
		assert.Contains(t, callout.Message, "hospital deserts in Georgia")

		mockCensus.AssertExpectations(t)
	})

	t.Run("unknown state", func(t *testing.T) {
		uc := newDesertUseCase(&MockCensusRepository{}, &MockCacheRepository{})

		bad := req
		bad.StateName = "Atlantis"
		_, err := uc.Analyze(ctx, bad)
		assert.Equal(t, errors.ErrStateNotFound, err)
	})

	t.Run("unknown facility", func(t *testing.T) {
		uc := newDesertUseCase(&MockCensusRepository{}, &MockCacheRepository{})

		bad := req
		bad.FacilityName = "libraries"
		_, err := uc.Analyze(ctx, bad)
		assert.Equal(t, errors.ErrFacilityNotFound, err)
	})

	t.Run("out of range thresholds rejected", func(t *testing.T) {
		uc := newDesertUseCase(&MockCensusRepository{}, &MockCacheRepository{})

		bad := req
		bad.PovertyThreshold = 120
		_, err := uc.Analyze(ctx, bad)
		assert.Equal(t, errors.ErrInvalidPovertyThreshold, err)

		bad = req
		bad.RuralDistanceThreshold = -1
		_, err = uc.Analyze(ctx, bad)
		assert.Equal(t, errors.ErrInvalidDistanceThreshold, err)
	})

	t.Run("database failure", func(t *testing.T) {
		mockCensus := &MockCensusRepository{}
		mockCache := &MockCacheRepository{}
		uc := newDesertUseCase(mockCensus, mockCache)

		mockCache.On("Get", ctx, mock.Anything).Return(nil, nil)
		mockCensus.On("GetBlockgroups", ctx, "13").Return(nil, fmt.Errorf("connection refused"))

		_, err := uc.Analyze(ctx, req)
		assert.Equal(t, errors.ErrDatabaseError, err)
	})

	t.Run("empty state returns empty analysis", func(t *testing.T) {
		mockCensus := &MockCensusRepository{}
		mockCache := &MockCacheRepository{}
		uc := newDesertUseCase(mockCensus, mockCache)

		mockCache.On("Get", ctx, mock.Anything).Return(nil, nil)
		mockCache.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		mockCensus.On("GetBlockgroups", ctx, "13").Return([]*domain.Blockgroup{}, nil)

		result, err := uc.Analyze(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, 0, result.TotalBlockgroups)
		assert.Empty(t, result.DemographicsAll)
		assert.Empty(t, result.AffectedGroups)
	})
}

func TestDesertUseCase_RefreshSummary(t *testing.T) {
	ctx := context.Background()

	mockCensus := &MockCensusRepository{}
	mockCache := &MockCacheRepository{}
	uc := newDesertUseCase(mockCensus, mockCache)

	blockgroups := []*domain.Blockgroup{
		testBlockgroup("a", domain.RacialLabelWhite, 30, true, 5),
		testBlockgroup("b", domain.RacialLabelBlack, 10, true, 1),
	}

	mockCensus.On("GetBlockgroups", ctx, "13").Return(blockgroups, nil)
	mockCache.On("SetSummary", ctx, mock.Anything, 24*time.Hour).Return(nil)

	facility, _ := domain.FacilityByName("hospitals")
	summary, err := uc.RefreshSummary(ctx, "13", facility)

	assert.NoError(t, err)
	assert.Equal(t, "13", summary.StateFIPS)
	assert.Equal(t, "hospitals", summary.FacilityName)
	assert.Equal(t, 2, summary.TotalBlockgroups)
	assert.Equal(t, 1, summary.DesertBlockgroups)
	assert.False(t, summary.ComputedAt.IsZero())

	mockCache.AssertExpectations(t)
}

func TestDesertUseCase_Summary(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips recompute", func(t *testing.T) {
		mockCensus := &MockCensusRepository{}
		mockCache := &MockCacheRepository{}
		uc := newDesertUseCase(mockCensus, mockCache)

		cached := &domain.DesertSummary{StateFIPS: "13", FacilityName: "hospitals"}
		mockCache.On("GetSummary", ctx, "13", "hospitals").Return(cached, nil)

		summary, err := uc.Summary(ctx, "13", "hospitals")

		assert.NoError(t, err)
		assert.Equal(t, cached, summary)
		mockCensus.AssertNotCalled(t, "GetBlockgroups")
	})

	t.Run("cache miss recomputes", func(t *testing.T) {
		mockCensus := &MockCensusRepository{}
		mockCache := &MockCacheRepository{}
		uc := newDesertUseCase(mockCensus, mockCache)

		mockCache.On("GetSummary", ctx, "13", "hospitals").Return(nil, nil)
		mockCache.On("SetSummary", ctx, mock.Anything, mock.Anything).Return(nil)
		mockCensus.On("GetBlockgroups", ctx, "13").Return([]*domain.Blockgroup{}, nil)

		summary, err := uc.Summary(ctx, "13", "hospitals")

		assert.NoError(t, err)
		assert.Equal(t, 0, summary.TotalBlockgroups)
	})

	t.Run("unknown state", func(t *testing.T) {
		uc := newDesertUseCase(&MockCensusRepository{}, &MockCacheRepository{})
		_, err := uc.Summary(ctx, "99", "hospitals")
		assert.Equal(t, errors.ErrStateNotFound, err)
	})
}
