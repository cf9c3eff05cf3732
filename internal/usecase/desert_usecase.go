package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/deserts-microservice/internal/domain"
	"github.com/deserts-microservice/internal/domain/repository"
	"github.com/deserts-microservice/internal/pkg/errors"
	"github.com/deserts-microservice/internal/pkg/utils"
	"github.com/deserts-microservice/internal/usecase/dto"
)

// Пороги эвристики непропорционального воздействия.
// Значения исторические, поведение важнее статистической строгости.
const (
	minDesertCount      = 5
	desertRatioFactor   = 4.0
	desertFractionDelta = 0.1
)

// DesertUseCase - классификация дефицитных зон и демографический анализ
type DesertUseCase struct {
	censusRepo  repository.CensusRepository
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
	analysisTTL time.Duration
	summaryTTL  time.Duration
}

func NewDesertUseCase(
	censusRepo repository.CensusRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	analysisTTL time.Duration,
	summaryTTL time.Duration,
) *DesertUseCase {
	return &DesertUseCase{
		censusRepo:  censusRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		analysisTTL: analysisTTL,
		summaryTTL:  summaryTTL,
	}
}

// ComputeDeserts возвращает подмножество blockgroups, классифицированных
// как дефицитные зоны по заданным критериям. Чистая функция.
func (uc *DesertUseCase) ComputeDeserts(blockgroups []*domain.Blockgroup, criteria domain.DesertCriteria) []*domain.Blockgroup {
	deserts := make([]*domain.Blockgroup, 0)
	for _, bg := range blockgroups {
		if criteria.Matches(bg) {
			deserts = append(deserts, bg)
		}
	}
	return deserts
}

// DemographicData агрегирует blockgroups по расовой метке большинства.
// Сумма значений всегда равна len(blockgroups).
func (uc *DesertUseCase) DemographicData(blockgroups []*domain.Blockgroup) domain.Demographics {
	demographics := make(domain.Demographics)
	for _, bg := range blockgroups {
		label := bg.RacialMajority
		if !label.Valid() {
			label = domain.RacialLabelOther
		}
		demographics[label]++
	}
	return demographics
}

// DisproportionatelyAffected возвращает метки групп, непропорционально
// представленных среди дефицитных зон: минимум minDesertCount зон И
// (доля в зонах больше доли в штате в desertRatioFactor раз ИЛИ разница
// долей больше desertFractionDelta). Пустой агрегат с любой стороны
// даёт пустой результат, а не деление на ноль.
func (uc *DesertUseCase) DisproportionatelyAffected(all, deserts domain.Demographics) []domain.RacialLabel {
	affected := make([]domain.RacialLabel, 0)

	nAll := all.Total()
	nDeserts := deserts.Total()
	if nAll == 0 || nDeserts == 0 {
		return affected
	}

	for _, label := range domain.RacialLabels {
		if _, ok := all[label]; !ok {
			continue
		}
		countDeserts, ok := deserts[label]
		if !ok {
			continue
		}

		fractionAll := float64(all[label]) / float64(nAll)
		fractionDeserts := float64(countDeserts) / float64(nDeserts)

		enoughDeserts := countDeserts >= minDesertCount
		ratioExceeded := fractionDeserts > desertRatioFactor*fractionAll
		deltaExceeded := fractionDeserts-fractionAll > desertFractionDelta

		if enoughDeserts && (ratioExceeded || deltaExceeded) {
			affected = append(affected, label)
		}
	}

	return affected
}

// Analyze выполняет полный анализ для пары (штат, тип объекта) с заданными порогами
func (uc *DesertUseCase) Analyze(ctx context.Context, req dto.DesertAnalysisRequest) (*dto.DesertAnalysisResponse, error) {
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

	// Пробуем кеш: результат зависит только от штата, типа объекта и порогов
	cacheKey := analysisCacheKey(state.FIPS, facility.Name, req)
	if cached, err := uc.cacheRepo.Get(ctx, cacheKey); err == nil && cached != nil {
		var response dto.DesertAnalysisResponse
		if err := json.Unmarshal(cached, &response); err == nil {
			return &response, nil
		}
		uc.logger.Warn("Failed to unmarshal cached analysis", zap.String("key", cacheKey))
	}

	blockgroups, err := uc.censusRepo.GetBlockgroups(ctx, state.FIPS)
	if err != nil {
		uc.logger.Error("Failed to load blockgroups",
			zap.String("state_fips", state.FIPS),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	criteria := domain.DesertCriteria{
		PovertyThreshold:       req.PovertyThreshold,
		UrbanDistanceThreshold: req.UrbanDistanceThreshold,
		RuralDistanceThreshold: req.RuralDistanceThreshold,
		DistanceLabel:          facility.DistanceLabel,
	}

	deserts := uc.ComputeDeserts(blockgroups, criteria)
	demographicsAll := uc.DemographicData(blockgroups)
	demographicsDeserts := uc.DemographicData(deserts)
	affected := uc.DisproportionatelyAffected(demographicsAll, demographicsDeserts)

	response := &dto.DesertAnalysisResponse{
		State: state,
		Facility: dto.FacilityInfo{
			Name:          facility.Name,
			DisplayName:   facility.DisplayName,
			Type:          facility.Type,
			DistanceLabel: facility.DistanceLabel,
			Message:       facility.Message,
		},
		TotalBlockgroups:    len(blockgroups),
		DesertBlockgroups:   len(deserts),
		DemographicsAll:     buildBreakdown(demographicsAll),
		DemographicsDeserts: buildBreakdown(demographicsDeserts),
		AffectedGroups:      uc.buildCallouts(affected, demographicsAll, demographicsDeserts, facility, state),
	}

	if data, err := json.Marshal(response); err == nil {
		if err := uc.cacheRepo.Set(ctx, cacheKey, data, uc.analysisTTL); err != nil {
			uc.logger.Warn("Failed to cache analysis", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	return response, nil
}

// RefreshSummary пересчитывает сводку при порогах по умолчанию и кеширует её
func (uc *DesertUseCase) RefreshSummary(ctx context.Context, stateFIPS string, facility *domain.Facility) (*domain.DesertSummary, error) {
	blockgroups, err := uc.censusRepo.GetBlockgroups(ctx, stateFIPS)
	if err != nil {
		return nil, fmt.Errorf("load blockgroups: %w", err)
	}

	criteria := domain.DesertCriteria{
		PovertyThreshold:       domain.DefaultPovertyThreshold,
		UrbanDistanceThreshold: domain.DefaultUrbanDistanceThreshold,
		RuralDistanceThreshold: domain.DefaultRuralDistanceThreshold,
		DistanceLabel:          facility.DistanceLabel,
	}

	deserts := uc.ComputeDeserts(blockgroups, criteria)
	demographicsAll := uc.DemographicData(blockgroups)
	demographicsDeserts := uc.DemographicData(deserts)

	summary := &domain.DesertSummary{
		StateFIPS:           stateFIPS,
		FacilityName:        facility.Name,
		TotalBlockgroups:    len(blockgroups),
		DesertBlockgroups:   len(deserts),
		DemographicsAll:     demographicsAll,
		DemographicsDeserts: demographicsDeserts,
		AffectedGroups:      uc.DisproportionatelyAffected(demographicsAll, demographicsDeserts),
		ComputedAt:          time.Now(),
	}

	if err := uc.cacheRepo.SetSummary(ctx, summary, uc.summaryTTL); err != nil {
		uc.logger.Warn("Failed to cache summary",
			zap.String("state_fips", stateFIPS),
			zap.String("facility", facility.Name),
			zap.Error(err))
	}

	return summary, nil
}

// Summary возвращает кешированную сводку, при промахе пересчитывает
func (uc *DesertUseCase) Summary(ctx context.Context, stateFIPS, facilityName string) (*domain.DesertSummary, error) {
	if _, ok := domain.StateByFIPS(stateFIPS); !ok {
		return nil, errors.ErrStateNotFound
	}
	facility, ok := domain.FacilityByName(facilityName)
	if !ok {
		return nil, errors.ErrFacilityNotFound
	}

	summary, err := uc.cacheRepo.GetSummary(ctx, stateFIPS, facility.Name)
	if err == nil && summary != nil {
		return summary, nil
	}
	if err != nil {
		uc.logger.Warn("Summary cache read failed",
			zap.String("state_fips", stateFIPS),
			zap.String("facility", facility.Name),
			zap.Error(err))
	}

	summary, err = uc.RefreshSummary(ctx, stateFIPS, facility)
	if err != nil {
		uc.logger.Error("Failed to refresh summary",
			zap.String("state_fips", stateFIPS),
			zap.String("facility", facility.Name),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return summary, nil
}

// validateThresholds проверяет, что пороги попадают в диапазоны слайдеров
func validateThresholds(poverty, urban, rural float64) error {
	if poverty < domain.MinPovertyThreshold || poverty > domain.MaxPovertyThreshold {
		return errors.ErrInvalidPovertyThreshold
	}
	if urban < domain.MinUrbanDistanceThreshold || urban > domain.MaxUrbanDistanceThreshold {
		return errors.ErrInvalidDistanceThreshold
	}
	if rural < domain.MinRuralDistanceThreshold || rural > domain.MaxRuralDistanceThreshold {
		return errors.ErrInvalidDistanceThreshold
	}
	return nil
}

func analysisCacheKey(stateFIPS, facilityName string, req dto.DesertAnalysisRequest) string {
	return fmt.Sprintf("analysis:%s:%s:%g:%g:%g",
		stateFIPS,
		facilityName,
		req.PovertyThreshold,
		req.UrbanDistanceThreshold,
		req.RuralDistanceThreshold,
	)
}

// buildBreakdown строит упорядоченное представление агрегата для stacked bar;
// метки идут в каноническом порядке, нулевые пропускаются
func buildBreakdown(demographics domain.Demographics) []dto.DemographicSlice {
	total := demographics.Total()
	slices := make([]dto.DemographicSlice, 0, len(demographics))

	for _, label := range domain.RacialLabels {
		count, ok := demographics[label]
		if !ok || count == 0 {
			continue
		}

		fraction := 0.0
		if total > 0 {
			fraction = float64(count) / float64(total)
		}

		slices = append(slices, dto.DemographicSlice{
			Label:    string(label),
			Legend:   label.Legend(),
			Count:    count,
			Fraction: fraction,
		})
	}

	return slices
}

// buildCallouts строит тексты для затронутых групп
func (uc *DesertUseCase) buildCallouts(
	affected []domain.RacialLabel,
	all, deserts domain.Demographics,
	facility *domain.Facility,
	state domain.USState,
) []dto.ImpactCallout {
	callouts := make([]dto.ImpactCallout, 0, len(affected))

	for _, label := range affected {
		percentAll := utils.RoundPercent(all.Fraction(label))
		percentDeserts := utils.RoundPercent(deserts.Fraction(label))

		callouts = append(callouts, dto.ImpactCallout{
			Label:          string(label),
			Legend:         label.Legend(),
			PercentAll:     percentAll,
			PercentDeserts: percentDeserts,
			Message: fmt.Sprintf(
				"%s blockgroups make up %.2f%% of %s deserts in %s while being only %.2f%% of all blockgroups.",
				label.Legend(), percentDeserts, facility.Type, state.Name, percentAll,
			),
		})
	}

	return callouts
}
