package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/deserts-microservice/internal/domain"
	"github.com/deserts-microservice/internal/domain/repository"
	"github.com/deserts-microservice/internal/pkg/utils"
	"github.com/deserts-microservice/internal/pkg/validator"
	"github.com/deserts-microservice/internal/usecase"
	"github.com/deserts-microservice/internal/usecase/dto"
)

// DesertHandler - обработчик анализа дефицитных зон
type DesertHandler struct {
	desertUC   *usecase.DesertUseCase
	streamRepo repository.StreamRepository
	logger     *zap.Logger
}

// NewDesertHandler - создание нового DesertHandler
func NewDesertHandler(desertUC *usecase.DesertUseCase, streamRepo repository.StreamRepository, logger *zap.Logger) *DesertHandler {
	return &DesertHandler{
		desertUC:   desertUC,
		streamRepo: streamRepo,
		logger:     logger,
	}
}

// Analyze godoc
// @Summary Анализ дефицитных зон
// @Description Классифицирует blockgroups штата как дефицитные зоны по заданным порогам и возвращает демографический разрез с непропорционально затронутыми группами
// @Tags Deserts
// @Accept json
// @Produce json
// @Param request body dto.DesertAnalysisRequest true "Штат, тип объекта и пороги"
// @Success 200 {object} utils.SuccessResponse{data=dto.DesertAnalysisResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/deserts/analyze [post]
func (h *DesertHandler) Analyze(c *fiber.Ctx) error {
	var req dto.DesertAnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.desertUC.Analyze(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.TotalBlockgroups,
	})
}

// GetSummary godoc
// @Summary Кешированная сводка по штату
// @Description Возвращает сводку дефицитных зон для пары (штат, тип объекта) при порогах по умолчанию; при промахе кеша пересчитывает синхронно
// @Tags Deserts
// @Produce json
// @Param state_fips path string true "FIPS код штата"
// @Param facility path string true "Внутренний ключ типа объекта"
// @Success 200 {object} utils.SuccessResponse{data=domain.DesertSummary}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/deserts/summary/{state_fips}/{facility} [get]
func (h *DesertHandler) GetSummary(c *fiber.Ctx) error {
	stateFIPS := c.Params("state_fips")
	facilityName := c.Params("facility")

	summary, err := h.desertUC.Summary(c.Context(), stateFIPS, facilityName)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, summary, nil)
}

// Refresh godoc
// @Summary Постановка пересчёта сводок в очередь
// @Description Публикует запрос на фоновый пересчёт кешированных сводок штата в Redis Stream; воркер обрабатывает его асинхронно
// @Tags Deserts
// @Accept json
// @Produce json
// @Param request body dto.SummaryRefreshRequest true "Штат и типы объектов для пересчёта"
// @Success 202 {object} utils.SuccessResponse{data=dto.SummaryRefreshResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/deserts/refresh [post]
func (h *DesertHandler) Refresh(c *fiber.Ctx) error {
	var req dto.SummaryRefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	event := domain.CensusRefreshEvent{
		RequestID:     uuid.New(),
		StateFIPS:     req.StateFIPS,
		FacilityNames: req.FacilityNames,
	}

	if err := h.streamRepo.PublishToStream(c.Context(), domain.StreamCensusRefresh, event); err != nil {
		h.logger.Error("Failed to publish refresh event",
			zap.String("state_fips", req.StateFIPS),
			zap.Error(err))
		return utils.SendError(c, err)
	}

	h.logger.Info("Summary refresh queued",
		zap.String("request_id", event.RequestID.String()),
		zap.String("state_fips", req.StateFIPS))

	return c.Status(fiber.StatusAccepted).JSON(utils.SuccessResponse{
		Data: dto.SummaryRefreshResponse{
			RequestID: event.RequestID,
			StateFIPS: req.StateFIPS,
		},
	})
}
