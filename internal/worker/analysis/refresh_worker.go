package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/deserts-microservice/internal/domain"
	"github.com/deserts-microservice/internal/domain/repository"
	"github.com/deserts-microservice/internal/usecase"
	"github.com/deserts-microservice/internal/worker"
)

const (
	defaultBatchSize = 10                     // максимум сообщений за раз
	emptyQueueSleep  = 100 * time.Millisecond // пауза если очередь пуста
	errorSleep       = time.Second            // пауза при ошибке батча
)

// SummaryRefreshWorker пересчитывает кешированные сводки дефицитных зон
// по событиям обновления census-данных
type SummaryRefreshWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	desertUC     *usecase.DesertUseCase
	consumerName string
	batchSize    int
}

// NewSummaryRefreshWorker создает новый SummaryRefreshWorker
func NewSummaryRefreshWorker(
	streamRepo repository.StreamRepository,
	desertUC *usecase.DesertUseCase,
	consumerGroup string,
	batchSize int,
	logger *zap.Logger,
) *SummaryRefreshWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	return &SummaryRefreshWorker{
		BaseWorker:   worker.NewBaseWorker("summary-refresh", consumerGroup, logger),
		streamRepo:   streamRepo,
		desertUC:     desertUC,
		consumerName: consumerName,
		batchSize:    batchSize,
	}
}

// Start запускает основной цикл обработки
func (w *SummaryRefreshWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting SummaryRefreshWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamCensusRefresh, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(errorSleep)
				continue
			}

			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch читает и обрабатывает batch событий.
// Возвращает количество прочитанных сообщений.
func (w *SummaryRefreshWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamCensusRefresh,
		w.ConsumerGroup(),
		w.consumerName,
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	logger.Info("Processing batch", zap.Int("message_count", len(messages)))

	for _, msg := range messages {
		event, err := w.parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ACK битое сообщение чтобы не застревало
			_ = w.streamRepo.AckMessage(ctx, domain.StreamCensusRefresh, w.ConsumerGroup(), msg.ID)
			continue
		}

		w.processEvent(ctx, event)

		if err := w.streamRepo.AckMessage(ctx, domain.StreamCensusRefresh, w.ConsumerGroup(), msg.ID); err != nil {
			logger.Error("Failed to ack message",
				zap.String("message_id", msg.ID),
				zap.Error(err))
		}
	}

	return len(messages), nil
}

// processEvent пересчитывает сводки по одному событию и публикует результат
func (w *SummaryRefreshWorker) processEvent(ctx context.Context, event *domain.CensusRefreshEvent) {
	logger := w.Logger()

	done := domain.CensusRefreshDoneEvent{
		RequestID: event.RequestID,
		StateFIPS: event.StateFIPS,
	}

	for _, facility := range event.Facilities() {
		if _, err := w.desertUC.RefreshSummary(ctx, event.StateFIPS, facility); err != nil {
			logger.Error("Failed to refresh summary",
				zap.String("request_id", event.RequestID.String()),
				zap.String("state_fips", event.StateFIPS),
				zap.String("facility", facility.Name),
				zap.Error(err))
			done.Error = err.Error()
			continue
		}
		done.Summaries++
	}

	logger.Info("Summaries refreshed",
		zap.String("request_id", event.RequestID.String()),
		zap.String("state_fips", event.StateFIPS),
		zap.Int("summaries", done.Summaries))

	if err := w.streamRepo.PublishToStream(ctx, domain.StreamCensusDone, done); err != nil {
		logger.Error("Failed to publish done event",
			zap.String("request_id", event.RequestID.String()),
			zap.Error(err))
	}
}

// parseMessage десериализует событие из сообщения стрима
func (w *SummaryRefreshWorker) parseMessage(msg domain.StreamMessage) (*domain.CensusRefreshEvent, error) {
	var event domain.CensusRefreshEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.StateFIPS == "" {
		return nil, fmt.Errorf("event missing state_fips")
	}
	if _, ok := domain.StateByFIPS(event.StateFIPS); !ok {
		return nil, fmt.Errorf("unknown state_fips %q", event.StateFIPS)
	}

	return &event, nil
}
