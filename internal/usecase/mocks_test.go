package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/deserts-microservice/internal/domain"
)

// MockCensusRepository is a mock of CensusRepository
type MockCensusRepository struct {
	mock.Mock
}

func (m *MockCensusRepository) GetBlockgroups(ctx context.Context, stateFIPS string) ([]*domain.Blockgroup, error) {
	args := m.Called(ctx, stateFIPS)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Blockgroup), args.Error(1)
}

func (m *MockCensusRepository) GetStateBounds(ctx context.Context, stateFIPS string) (*domain.BoundingBox, error) {
	args := m.Called(ctx, stateFIPS)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BoundingBox), args.Error(1)
}

// MockFacilityRepository is a mock of FacilityRepository
type MockFacilityRepository struct {
	mock.Mock
}

func (m *MockFacilityRepository) GetLocations(ctx context.Context, facilityName string, bounds *domain.BoundingBox) ([]*domain.FacilityLocation, error) {
	args := m.Called(ctx, facilityName, bounds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FacilityLocation), args.Error(1)
}

func (m *MockFacilityRepository) GetVoronoiCells(ctx context.Context, facilityName, stateFIPS string) ([]*domain.VoronoiCell, error) {
	args := m.Called(ctx, facilityName, stateFIPS)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.VoronoiCell), args.Error(1)
}

// MockSessionRepository is a mock of SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Get(ctx context.Context, sessionID string) (*domain.Selection, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Selection), args.Error(1)
}

func (m *MockSessionRepository) Save(ctx context.Context, sessionID string, selection *domain.Selection, ttl time.Duration) error {
	args := m.Called(ctx, sessionID, selection, ttl)
	return args.Error(0)
}

func (m *MockSessionRepository) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetSummary(ctx context.Context, stateFIPS, facilityName string) (*domain.DesertSummary, error) {
	args := m.Called(ctx, stateFIPS, facilityName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DesertSummary), args.Error(1)
}

func (m *MockCacheRepository) SetSummary(ctx context.Context, summary *domain.DesertSummary, ttl time.Duration) error {
	args := m.Called(ctx, summary, ttl)
	return args.Error(0)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}
