package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/deserts-microservice/internal/config"
	"github.com/deserts-microservice/internal/delivery/http/handler"
	"github.com/deserts-microservice/internal/delivery/http/middleware"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	facilityHandler *handler.FacilityHandler
	desertHandler   *handler.DesertHandler
	mapHandler      *handler.MapHandler
	sessionHandler  *handler.SessionHandler
	statsHandler    *handler.StatsHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	facilityHandler *handler.FacilityHandler,
	desertHandler *handler.DesertHandler,
	mapHandler *handler.MapHandler,
	sessionHandler *handler.SessionHandler,
	statsHandler *handler.StatsHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Deserts Microservice",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		facilityHandler: facilityHandler,
		desertHandler:   desertHandler,
		mapHandler:      mapHandler,
		sessionHandler:  sessionHandler,
		statsHandler:    statsHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Registry routes
	api.Get("/facilities", s.facilityHandler.ListFacilities)
	api.Get("/states", s.facilityHandler.ListStates)

	// Desert analysis routes
	api.Post("/deserts/analyze", s.desertHandler.Analyze)
	api.Get("/deserts/summary/:state_fips/:facility", s.desertHandler.GetSummary)
	api.Post("/deserts/refresh", s.desertHandler.Refresh)

	// Map layer routes
	api.Post("/map/layers", s.mapHandler.GetLayers)

	// Session routes
	api.Get("/sessions/:id", s.sessionHandler.GetSelection)
	api.Patch("/sessions/:id/selection", s.sessionHandler.UpdateSelection)
	api.Post("/sessions/:id/reset", s.sessionHandler.ResetSelection)
	api.Get("/sessions/:id/dashboard", s.sessionHandler.RenderDashboard)

	// Mapbox config endpoint for the hosting dashboard
	api.Get("/config/mapbox", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"token": s.config.Dashboard.MapboxToken,
		})
	})

	// Stats
	api.Get("/stats", s.statsHandler.GetStatistics)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
