package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/deserts-microservice/internal/domain"
	redisRepo "github.com/deserts-microservice/internal/repository/redis"
)

const (
	testStream = "test:stream:census:refresh"
	testGroup  = "test-refresh-workers"
)

// getTestRedisClient creates a Redis client for testing
func getTestRedisClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     "localhost:6379",
		Password: "",
		DB:       1, // Use DB 1 for tests
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := client.Ping(ctx).Err()
	if err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	client.Del(ctx, testStream)

	return client
}

func TestStreamRepository_PublishAndConsume(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, testGroup))

	// Повторное создание группы не ошибка
	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, testGroup))

	event := domain.CensusRefreshEvent{
		RequestID: uuid.New(),
		StateFIPS: "13",
	}
	require.NoError(t, repo.PublishToStream(ctx, testStream, event))

	messages, err := repo.ConsumeBatch(ctx, testStream, testGroup, "test-consumer", 10)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0].Data, event.RequestID.String())

	require.NoError(t, repo.AckMessage(ctx, testStream, testGroup, messages[0].ID))

	// После ack очередь пуста
	messages, err = repo.ConsumeBatch(ctx, testStream, testGroup, "test-consumer", 10)
	require.NoError(t, err)
	assert.Empty(t, messages)

	client.Del(ctx, testStream)
}
