package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/deserts-microservice/internal/domain"
	"github.com/deserts-microservice/internal/domain/repository"
	"github.com/deserts-microservice/internal/pkg/errors"
	"github.com/deserts-microservice/internal/usecase/dto"
)

// SessionUseCase - жизненный цикл выбора пользователя в session store
type SessionUseCase struct {
	sessionRepo repository.SessionRepository
	logger      *zap.Logger
	ttl         time.Duration
	now         func() time.Time
}

func NewSessionUseCase(sessionRepo repository.SessionRepository, logger *zap.Logger, ttl time.Duration) *SessionUseCase {
	return &SessionUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
		ttl:         ttl,
		now:         time.Now,
	}
}

// GetOrCreate возвращает выбор сессии, при первом обращении сеет значения
// по умолчанию. Сохранённый выбор нормализуется перед возвратом, чтобы
// устаревшие ключи из старых сессий не протекали дальше.
func (uc *SessionUseCase) GetOrCreate(ctx context.Context, sessionID string) (*domain.Selection, error) {
	if sessionID == "" {
		return nil, errors.ErrInvalidSessionID
	}

	selection, err := uc.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		uc.logger.Error("Failed to read session",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return nil, errors.ErrCacheError
	}

	if selection == nil {
		selection = domain.DefaultSelection(uc.now())
		if err := uc.sessionRepo.Save(ctx, sessionID, selection, uc.ttl); err != nil {
			uc.logger.Error("Failed to seed session",
				zap.String("session_id", sessionID),
				zap.Error(err))
			return nil, errors.ErrCacheError
		}
		uc.logger.Info("Session seeded with defaults",
			zap.String("session_id", sessionID),
			zap.String("state", selection.StateName))
		return selection, nil
	}

	selection.Normalize(uc.now())
	return selection, nil
}

// Update применяет частичное обновление выбора и возвращает итоговое
// состояние. Запись завершается до ответа, поэтому следующий рендер
// гарантированно видит её.
func (uc *SessionUseCase) Update(ctx context.Context, sessionID string, req dto.SelectionUpdateRequest) (*domain.Selection, error) {
	selection, err := uc.GetOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if req.FacilityName != nil {
		selection.FacilityName = *req.FacilityName
	}
	if req.StateName != nil {
		selection.StateName = *req.StateName
	}
	if req.PovertyThreshold != nil {
		selection.PovertyThreshold = *req.PovertyThreshold
	}
	if req.UrbanDistanceThreshold != nil {
		selection.UrbanDistanceThreshold = *req.UrbanDistanceThreshold
	}
	if req.RuralDistanceThreshold != nil {
		selection.RuralDistanceThreshold = *req.RuralDistanceThreshold
	}
	if req.ShowDeserts != nil {
		selection.ShowDeserts = *req.ShowDeserts
	}
	if req.ShowFacilityLocations != nil {
		selection.ShowFacilityLocations = *req.ShowFacilityLocations
	}
	if req.ShowVoronoiCells != nil {
		selection.ShowVoronoiCells = *req.ShowVoronoiCells
	}

	selection.Normalize(uc.now())

	if err := uc.sessionRepo.Save(ctx, sessionID, selection, uc.ttl); err != nil {
		uc.logger.Error("Failed to save session",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return nil, errors.ErrCacheError
	}

	return selection, nil
}

// Reset сбрасывает сессию к значениям по умолчанию
func (uc *SessionUseCase) Reset(ctx context.Context, sessionID string) (*domain.Selection, error) {
	if sessionID == "" {
		return nil, errors.ErrInvalidSessionID
	}

	selection := domain.DefaultSelection(uc.now())
	if err := uc.sessionRepo.Save(ctx, sessionID, selection, uc.ttl); err != nil {
		uc.logger.Error("Failed to reset session",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return nil, errors.ErrCacheError
	}

	uc.logger.Info("Session reset", zap.String("session_id", sessionID))
	return selection, nil
}
