package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/deserts-microservice/internal/pkg/utils"
	"github.com/deserts-microservice/internal/pkg/validator"
	"github.com/deserts-microservice/internal/usecase"
	"github.com/deserts-microservice/internal/usecase/dto"
)

// SessionHandler - обработчик сессий и рендера дашборда
type SessionHandler struct {
	sessionUC   *usecase.SessionUseCase
	dashboardUC *usecase.DashboardUseCase
	logger      *zap.Logger
}

// NewSessionHandler - создание нового SessionHandler
func NewSessionHandler(sessionUC *usecase.SessionUseCase, dashboardUC *usecase.DashboardUseCase, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		sessionUC:   sessionUC,
		dashboardUC: dashboardUC,
		logger:      logger,
	}
}

// GetSelection godoc
// @Summary Текущий выбор сессии
// @Description Возвращает сохранённый выбор сессии; при первом обращении создаёт его со значениями по умолчанию и "штатом дня"
// @Tags Sessions
// @Produce json
// @Param id path string true "ID сессии"
// @Success 200 {object} utils.SuccessResponse{data=domain.Selection}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id} [get]
func (h *SessionHandler) GetSelection(c *fiber.Ctx) error {
	selection, err := h.sessionUC.GetOrCreate(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, selection, nil)
}

// UpdateSelection godoc
// @Summary Частичное обновление выбора
// @Description Применяет изменение одного или нескольких полей выбора (аналог change callback виджета) и возвращает итоговое состояние; запись завершается до ответа
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "ID сессии"
// @Param request body dto.SelectionUpdateRequest true "Изменяемые поля, nil = без изменения"
// @Success 200 {object} utils.SuccessResponse{data=domain.Selection}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/selection [patch]
func (h *SessionHandler) UpdateSelection(c *fiber.Ctx) error {
	var req dto.SelectionUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	selection, err := h.sessionUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, selection, nil)
}

// ResetSelection godoc
// @Summary Сброс выбора сессии
// @Description Возвращает выбор сессии к значениям по умолчанию
// @Tags Sessions
// @Produce json
// @Param id path string true "ID сессии"
// @Success 200 {object} utils.SuccessResponse{data=domain.Selection}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/reset [post]
func (h *SessionHandler) ResetSelection(c *fiber.Ctx) error {
	selection, err := h.sessionUC.Reset(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, selection, nil)
}

// RenderDashboard godoc
// @Summary Полный рендер дашборда
// @Description Собирает view-модель дашборда для текущего выбора сессии: анализ дефицитных зон, слои карты, заголовки, подписи и навигацию
// @Tags Sessions
// @Produce json
// @Param id path string true "ID сессии"
// @Success 200 {object} utils.SuccessResponse{data=dto.DashboardResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/dashboard [get]
func (h *SessionHandler) RenderDashboard(c *fiber.Ctx) error {
	dashboard, err := h.dashboardUC.Render(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dashboard, nil)
}
