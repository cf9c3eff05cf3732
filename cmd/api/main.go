package main

// @title Deserts Microservice API
// @version 1.0.0
// @description Микросервис анализа facility deserts: census blockgroups с высоким уровнем бедности и большим расстоянием до ближайшего объекта (аптеки, больницы, банки и другие). Предоставляет API для классификации дефицитных зон, демографического анализа, GeoJSON-слоёв карты и сессионного состояния дашборда.
// @description
// @description Основные возможности:
// @description - Классификация дефицитных зон по настраиваемым порогам бедности и расстояния
// @description - Демографический разрез с выделением непропорционально затронутых групп
// @description - GeoJSON-слои карты: маркеры зон, локации объектов, ячейки Вороного
// @description - Сессионный выбор пользователя с "штатом дня" для первого рендера
// @description - Фоновый пересчёт кешированных сводок через Redis Streams

// @contact.name API Support
// @contact.email support@deserts-microservice.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/deserts-microservice/docs/swagger"
	"github.com/deserts-microservice/internal/config"
	httpDelivery "github.com/deserts-microservice/internal/delivery/http"
	"github.com/deserts-microservice/internal/delivery/http/handler"
	"github.com/deserts-microservice/internal/pkg/logger"
	"github.com/deserts-microservice/internal/repository/cache"
	"github.com/deserts-microservice/internal/repository/postgres"
	redisRepo "github.com/deserts-microservice/internal/repository/redis"
	"github.com/deserts-microservice/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Deserts Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	censusRepo := postgres.NewCensusRepository(db, log)
	facilityRepo := postgres.NewFacilityRepository(db, log)
	statsRepo := postgres.NewStatsRepository(db, log)
	cacheRepo := cache.NewCacheRepository(redisClient)
	sessionRepo := cache.NewSessionRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	desertUC := usecase.NewDesertUseCase(
		censusRepo,
		cacheRepo,
		log,
		cfg.Cache.CensusCacheTTL,
		cfg.Cache.SummaryCacheTTL,
	)

	sessionUC := usecase.NewSessionUseCase(
		sessionRepo,
		log,
		cfg.Session.TTL,
	)

	mapUC := usecase.NewMapUseCase(
		censusRepo,
		facilityRepo,
		log,
	)

	facilityUC := usecase.NewFacilityUseCase(log)

	dashboardUC := usecase.NewDashboardUseCase(
		sessionUC,
		desertUC,
		mapUC,
		cfg.Dashboard.BaseURL,
		log,
	)

	statsUC := usecase.NewStatsUseCase(
		statsRepo,
		cacheRepo,
		log,
		cfg.Cache.CensusCacheTTL,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	facilityHandler := handler.NewFacilityHandler(facilityUC, log)
	desertHandler := handler.NewDesertHandler(desertUC, streamRepo, log)
	mapHandler := handler.NewMapHandler(mapUC, log)
	sessionHandler := handler.NewSessionHandler(sessionUC, dashboardUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		facilityHandler,
		desertHandler,
		mapHandler,
		sessionHandler,
		statsHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
