package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/deserts-microservice/internal/pkg/utils"
	"github.com/deserts-microservice/internal/usecase"
)

// FacilityHandler - обработчик реестров типов объектов и штатов
type FacilityHandler struct {
	facilityUC *usecase.FacilityUseCase
	logger     *zap.Logger
}

// NewFacilityHandler - создание нового FacilityHandler
func NewFacilityHandler(facilityUC *usecase.FacilityUseCase, logger *zap.Logger) *FacilityHandler {
	return &FacilityHandler{
		facilityUC: facilityUC,
		logger:     logger,
	}
}

// ListFacilities godoc
// @Summary Список типов объектов
// @Description Возвращает реестр типов объектов, по которым считаются дефицитные зоны, в порядке отображения в селекторе
// @Tags Registry
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.FacilityInfo}
// @Router /api/v1/facilities [get]
func (h *FacilityHandler) ListFacilities(c *fiber.Ctx) error {
	facilities := h.facilityUC.ListFacilities()
	return utils.SendSuccess(c, facilities, &utils.Meta{
		Total: len(facilities),
	})
}

// ListStates godoc
// @Summary Список штатов
// @Description Возвращает все штаты США (включая DC и Пуэрто-Рико) в алфавитном порядке и "штат дня" для первого рендера
// @Tags Registry
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.StatesResponse}
// @Router /api/v1/states [get]
func (h *FacilityHandler) ListStates(c *fiber.Ctx) error {
	states := h.facilityUC.ListStates()
	return utils.SendSuccess(c, states, &utils.Meta{
		Total: len(states.States),
	})
}
