package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/floatchat-backend/internal/domain"
)

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) EnsureSchema(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProfileRepository) LatestPosition(ctx context.Context, floatID string) (*domain.Profile, error) {
	args := m.Called(ctx, floatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) ProfilesByFloat(ctx context.Context, floatID string, limit int) ([]domain.Profile, error) {
	args := m.Called(ctx, floatID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) AverageTemperature(ctx context.Context, from, to time.Time) (float64, int, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(float64), args.Int(1), args.Error(2)
}

func (m *MockProfileRepository) ProfilesNearEquator(ctx context.Context, maxAbsLat float64, limit int) ([]domain.Profile, error) {
	args := m.Called(ctx, maxAbsLat, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) HasProfile(ctx context.Context, floatID string, cycleNumber int) (bool, error) {
	args := m.Called(ctx, floatID, cycleNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileRepository) InsertProfiles(ctx context.Context, profiles []domain.Profile) error {
	args := m.Called(ctx, profiles)
	return args.Error(0)
}

func (m *MockProfileRepository) UpsertMetadata(ctx context.Context, meta domain.FloatMetadata) error {
	args := m.Called(ctx, meta)
	return args.Error(0)
}

type MockSummaryRepository struct {
	mock.Mock
}

func (m *MockSummaryRepository) EnsureSchema(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSummaryRepository) Upsert(ctx context.Context, floatID, summary string, embedding []float32) error {
	args := m.Called(ctx, floatID, summary, embedding)
	return args.Error(0)
}

func (m *MockSummaryRepository) Search(ctx context.Context, embedding []float32, k int) ([]domain.FloatSummary, error) {
	args := m.Called(ctx, embedding, k)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FloatSummary), args.Error(1)
}

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

func (m *MockCacheRepository) GetHistory(ctx context.Context, id string) ([]domain.ChatMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChatMessage), args.Error(1)
}

func (m *MockCacheRepository) SetHistory(ctx context.Context, id string, history []domain.ChatMessage, ttl time.Duration) error {
	args := m.Called(ctx, id, history, ttl)
	return args.Error(0)
}
