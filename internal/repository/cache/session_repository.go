package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/deserts-microservice/internal/domain"
	"github.com/deserts-microservice/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type sessionRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewSessionRepository создает session store поверх Redis
func NewSessionRepository(redis *Redis) repository.SessionRepository {
	return &sessionRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

// Get возвращает сохранённый выбор сессии; (nil, nil) если сессия не инициализирована
func (r *sessionRepository) Get(ctx context.Context, sessionID string) (*domain.Selection, error) {
	data, err := r.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil // Session not initialized yet
	}
	if err != nil {
		r.logger.Error("Failed to get session", zap.String("session_id", sessionID), zap.Error(err))
		return nil, fmt.Errorf("session get error: %w", err)
	}

	var selection domain.Selection
	if err := json.Unmarshal(data, &selection); err != nil {
		r.logger.Error("Failed to unmarshal session", zap.String("session_id", sessionID), zap.Error(err))
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}

	return &selection, nil
}

// Save сохраняет выбор целиком, продлевая TTL сессии
func (r *sessionRepository) Save(ctx context.Context, sessionID string, selection *domain.Selection, ttl time.Duration) error {
	data, err := json.Marshal(selection)
	if err != nil {
		r.logger.Error("Failed to marshal session", zap.String("session_id", sessionID), zap.Error(err))
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := r.client.Set(ctx, sessionKey(sessionID), data, ttl).Err(); err != nil {
		r.logger.Error("Failed to save session", zap.String("session_id", sessionID), zap.Error(err))
		return fmt.Errorf("session save error: %w", err)
	}

	r.logger.Debug("Session saved",
		zap.String("session_id", sessionID),
		zap.Duration("ttl", ttl),
	)
	return nil
}

// Delete удаляет сессию
func (r *sessionRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		r.logger.Error("Failed to delete session", zap.String("session_id", sessionID), zap.Error(err))
		return fmt.Errorf("session delete error: %w", err)
	}
	return nil
}
