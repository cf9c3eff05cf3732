package repository

import (
	"context"
	"time"

	"github.com/deserts-microservice/internal/domain"
)

// SessionRepository определяет persistent store выбора пользователя.
// Store скоупится по сессии и переживает рендеры, но не конец сессии (TTL).
type SessionRepository interface {
	// Get возвращает сохранённый выбор; (nil, nil) если сессия не инициализирована
	Get(ctx context.Context, sessionID string) (*domain.Selection, error)

	// Save сохраняет выбор целиком, продлевая TTL сессии
	Save(ctx context.Context, sessionID string, selection *domain.Selection, ttl time.Duration) error

	// Delete удаляет сессию
	Delete(ctx context.Context, sessionID string) error
}
