package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/deserts-microservice/internal/usecase/dto"
)

// DashboardUseCase - сборка полной view-модели дашборда за один рендер
type DashboardUseCase struct {
	sessionUC *SessionUseCase
	desertUC  *DesertUseCase
	mapUC     *MapUseCase
	baseURL   string
	logger    *zap.Logger
}

func NewDashboardUseCase(
	sessionUC *SessionUseCase,
	desertUC *DesertUseCase,
	mapUC *MapUseCase,
	baseURL string,
	logger *zap.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		sessionUC: sessionUC,
		desertUC:  desertUC,
		mapUC:     mapUC,
		baseURL:   baseURL,
		logger:    logger,
	}
}

// Render собирает дашборд для текущего выбора сессии: анализ,
// слои карты, заголовки, подписи и навигацию
func (uc *DashboardUseCase) Render(ctx context.Context, sessionID string) (*dto.DashboardResponse, error) {
	selection, err := uc.sessionUC.GetOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	analysis, err := uc.desertUC.Analyze(ctx, dto.DesertAnalysisRequest{
		StateName:              selection.StateName,
		FacilityName:           selection.FacilityName,
		PovertyThreshold:       selection.PovertyThreshold,
		UrbanDistanceThreshold: selection.UrbanDistanceThreshold,
		RuralDistanceThreshold: selection.RuralDistanceThreshold,
	})
	if err != nil {
		return nil, err
	}

	mapLayers, err := uc.mapUC.Layers(ctx, dto.MapLayersRequest{
		StateName:              selection.StateName,
		FacilityName:           selection.FacilityName,
		PovertyThreshold:       selection.PovertyThreshold,
		UrbanDistanceThreshold: selection.UrbanDistanceThreshold,
		RuralDistanceThreshold: selection.RuralDistanceThreshold,
		ShowDeserts:            selection.ShowDeserts,
		ShowFacilityLocations:  selection.ShowFacilityLocations,
		ShowVoronoiCells:       selection.ShowVoronoiCells,
	})
	if err != nil {
		return nil, err
	}

	facility := analysis.Facility
	stateName := analysis.State.Name

	return &dto.DashboardResponse{
		SessionID: sessionID,
		Selection: selection,
		Title:     fmt.Sprintf("%s deserts in %s", capitalize(facility.Type), stateName),
		Subtitle:  fmt.Sprintf("Based on distances to %s", strings.ToLower(facility.DisplayName)),
		Message:   facility.Message,
		TotalCaption: fmt.Sprintf("%d blockgroups in %s",
			analysis.TotalBlockgroups, stateName),
		DesertCaption: fmt.Sprintf("%d blockgroups classified as %s deserts",
			analysis.DesertBlockgroups, facility.Type),
		Analysis: analysis,
		Map:      mapLayers,
		Navigation: []dto.NavigationLink{
			{Label: "How this works", URL: uc.baseURL + "/explanation"},
			{Label: "Suggesting new facilities", URL: uc.baseURL + "/suggesting-new-facilities"},
		},
	}, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
