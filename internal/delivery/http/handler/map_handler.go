package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/deserts-microservice/internal/pkg/utils"
	"github.com/deserts-microservice/internal/pkg/validator"
	"github.com/deserts-microservice/internal/usecase"
	"github.com/deserts-microservice/internal/usecase/dto"
)

// MapHandler - обработчик GeoJSON-слоёв карты
type MapHandler struct {
	mapUC  *usecase.MapUseCase
	logger *zap.Logger
}

// NewMapHandler - создание нового MapHandler
func NewMapHandler(mapUC *usecase.MapUseCase, logger *zap.Logger) *MapHandler {
	return &MapHandler{
		mapUC:  mapUC,
		logger: logger,
	}
}

// GetLayers godoc
// @Summary Слои карты для текущего выбора
// @Description Возвращает границы штата и включённые слои: маркеры дефицитных зон, локации объектов (сводная группа аптек разворачивается в отдельные сети) и ячейки Вороного
// @Tags Map
// @Accept json
// @Produce json
// @Param request body dto.MapLayersRequest true "Выбор штата, типа объекта, порогов и слоёв"
// @Success 200 {object} utils.SuccessResponse{data=dto.MapLayersResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/map/layers [post]
func (h *MapHandler) GetLayers(c *fiber.Ctx) error {
	var req dto.MapLayersRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.mapUC.Layers(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
