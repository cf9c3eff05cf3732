package usecase

import (
	"time"

	"go.uber.org/zap"

	"github.com/deserts-microservice/internal/domain"
	"github.com/deserts-microservice/internal/usecase/dto"
)

// FacilityUseCase - реестры типов объектов и штатов для селекторов дашборда
type FacilityUseCase struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewFacilityUseCase(logger *zap.Logger) *FacilityUseCase {
	return &FacilityUseCase{
		logger: logger,
		now:    time.Now,
	}
}

// ListFacilities возвращает типы объектов в порядке селектора
func (uc *FacilityUseCase) ListFacilities() []dto.FacilityInfo {
	facilities := make([]dto.FacilityInfo, 0, len(domain.Facilities))
	for _, f := range domain.Facilities {
		facilities = append(facilities, dto.FacilityInfo{
			Name:          f.Name,
			DisplayName:   f.DisplayName,
			Type:          f.Type,
			DistanceLabel: f.DistanceLabel,
			Message:       f.Message,
		})
	}
	return facilities
}

// ListStates возвращает штаты в алфавитном порядке и "штат дня"
func (uc *FacilityUseCase) ListStates() dto.StatesResponse {
	return dto.StatesResponse{
		States:        domain.USStates,
		StateOfTheDay: domain.StateOfTheDay(uc.now()),
	}
}
