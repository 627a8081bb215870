package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/floatchat-backend/internal/domain"
	"github.com/floatchat-backend/internal/embedding"
	"github.com/floatchat-backend/internal/usecase"
	"github.com/floatchat-backend/internal/usecase/dto"
)

func newQueryUseCase(
	t *testing.T,
	profiles *MockProfileRepository,
	summaries *MockSummaryRepository,
	cache *MockCacheRepository,
) *usecase.QueryUseCase {
	t.Helper()
	return usecase.NewQueryUseCase(
		profiles, summaries, cache,
		testCatalog(t),
		embedding.NewEncoder(),
		time.Minute,
		zap.NewNop(),
	)
}

func missAndStore(cache *MockCacheRepository) {
	cache.On("Get", mock.Anything, mock.Anything).Return(nil, nil)
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
}

func TestQueryUseCase_Position(t *testing.T) {
	ctx := context.Background()
	profiles := &MockProfileRepository{}
	cache := &MockCacheRepository{}
	missAndStore(cache)

	profiles.On("LatestPosition", ctx, "2902276").Return(&domain.Profile{
		FloatID:   "2902276",
		Latitude:  1.5,
		Longitude: 80.2,
		Date:      time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
	}, nil)

	uc := newQueryUseCase(t, profiles, &MockSummaryRepository{}, cache)

	resp, err := uc.Process(ctx, dto.QueryRequest{Query: "Where is float 2902276?"})

	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "2902276", resp.Data[0]["float_id"])
	assert.Equal(t, "2902276", resp.MapID)
	assert.Empty(t, resp.MapDest)
	assert.Contains(t, resp.Summary, "2902276")
	assert.False(t, resp.Cached)
	profiles.AssertExpectations(t)
}

func TestQueryUseCase_PositionWithDestination(t *testing.T) {
	ctx := context.Background()
	profiles := &MockProfileRepository{}
	cache := &MockCacheRepository{}
	missAndStore(cache)

	profiles.On("LatestPosition", ctx, "2902276").Return(&domain.Profile{
		FloatID:   "2902276",
		Latitude:  13.0,
		Longitude: 80.5,
		Date:      time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
	}, nil)

	uc := newQueryUseCase(t, profiles, &MockSummaryRepository{}, cache)

	resp, err := uc.Process(ctx, dto.QueryRequest{
		Query: "Show the route from float 2902276 to singapore",
	})

	require.NoError(t, err)
	assert.Equal(t, "2902276", resp.MapID)
	assert.Equal(t, "Singapore", resp.MapDest)
}

func TestQueryUseCase_Profile(t *testing.T) {
	ctx := context.Background()
	profiles := &MockProfileRepository{}
	cache := &MockCacheRepository{}
	missAndStore(cache)

	rows := []domain.Profile{
		{FloatID: "2902276", Pressure: 5, Temperature: 28.1, Salinity: 34.5},
		{FloatID: "2902276", Pressure: 100, Temperature: 15.2, Salinity: 35.0},
	}
	profiles.On("ProfilesByFloat", ctx, "2902276", mock.Anything).Return(rows, nil)

	uc := newQueryUseCase(t, profiles, &MockSummaryRepository{}, cache)

	resp, err := uc.Process(ctx, dto.QueryRequest{
		Query: "Show salinity profile for 2902276",
	})

	require.NoError(t, err)
	require.Len(t, resp.Data, 2)
	require.NotNil(t, resp.Chart)

	// Pressure profile renders depth-down.
	assert.Equal(t, "line", resp.Chart.Kind)
	assert.Equal(t, "temperature", resp.Chart.X)
	assert.Equal(t, "pressure", resp.Chart.Y)
	assert.True(t, resp.Chart.InvertY)
}

func TestQueryUseCase_AverageTemperature(t *testing.T) {
	ctx := context.Background()
	profiles := &MockProfileRepository{}
	cache := &MockCacheRepository{}
	missAndStore(cache)

	from := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)
	profiles.On("AverageTemperature", ctx, from, to).Return(12.75, 420, nil)

	uc := newQueryUseCase(t, profiles, &MockSummaryRepository{}, cache)

	resp, err := uc.Process(ctx, dto.QueryRequest{
		Query: "What was the average temperature between 2023-03-01 and 2023-03-31?",
	})

	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 12.75, resp.Data[0]["average_temperature"])

	// Aggregated single row renders as a bar chart.
	require.NotNil(t, resp.Chart)
	assert.Equal(t, "bar", resp.Chart.Kind)
	profiles.AssertExpectations(t)
}

func TestQueryUseCase_Equator(t *testing.T) {
	ctx := context.Background()
	profiles := &MockProfileRepository{}
	cache := &MockCacheRepository{}
	missAndStore(cache)

	rows := []domain.Profile{
		{FloatID: "2902276", Latitude: 0.4, Longitude: 80.1,
			Date: time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC), Temperature: 28, Salinity: 34},
	}
	profiles.On("ProfilesNearEquator", ctx, 5.0, mock.Anything).Return(rows, nil)

	uc := newQueryUseCase(t, profiles, &MockSummaryRepository{}, cache)

	resp, err := uc.Process(ctx, dto.QueryRequest{Query: "Which floats are near the equator?"})

	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 0.4, resp.Data[0]["latitude"])
	profiles.AssertExpectations(t)
}

func TestQueryUseCase_SemanticFallback(t *testing.T) {
	ctx := context.Background()
	summaries := &MockSummaryRepository{}
	cache := &MockCacheRepository{}
	missAndStore(cache)

	hits := []domain.FloatSummary{
		{FloatID: "2902276", Summary: "Float 2902276 recorded warm equatorial water."},
	}
	summaries.On("Search", ctx, mock.Anything, 3).Return(hits, nil)

	uc := newQueryUseCase(t, &MockProfileRepository{}, summaries, cache)

	resp, err := uc.Process(ctx, dto.QueryRequest{
		Query: "Tell me about warm water floats",
	})

	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "2902276", resp.Data[0]["float_id"])
	summaries.AssertExpectations(t)
}

func TestQueryUseCase_FloatNotFoundIsConversational(t *testing.T) {
	ctx := context.Background()
	profiles := &MockProfileRepository{}
	cache := &MockCacheRepository{}
	missAndStore(cache)

	profiles.On("LatestPosition", ctx, "999999").
		Return(nil, assert.AnError)

	uc := newQueryUseCase(t, profiles, &MockSummaryRepository{}, cache)

	resp, err := uc.Process(ctx, dto.QueryRequest{Query: "Where is float 999999?"})

	require.NoError(t, err)
	assert.Empty(t, resp.Data)
	assert.Contains(t, resp.Summary, "999999")
}

func TestQueryUseCase_CacheHit(t *testing.T) {
	ctx := context.Background()
	cache := &MockCacheRepository{}

	stored, _ := json.Marshal(dto.QueryResponse{Summary: "cached answer"})
	cache.On("Get", mock.Anything, mock.Anything).Return(stored, nil)

	uc := newQueryUseCase(t, &MockProfileRepository{}, &MockSummaryRepository{}, cache)

	resp, err := uc.Process(ctx, dto.QueryRequest{Query: "Where is float 2902276?"})

	require.NoError(t, err)
	assert.Equal(t, "cached answer", resp.Summary)
	assert.True(t, resp.Cached)
}

func TestQueryUseCase_Resummarize(t *testing.T) {
	ctx := context.Background()
	profiles := &MockProfileRepository{}
	cache := &MockCacheRepository{}
	missAndStore(cache)

	profiles.On("LatestPosition", mock.Anything, "2902276").Return(&domain.Profile{
		FloatID:   "2902276",
		Latitude:  1.5,
		Longitude: 80.2,
		Date:      time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
	}, nil)

	uc := newQueryUseCase(t, profiles, &MockSummaryRepository{}, cache)

	resp, err := uc.Resummarize(ctx, dto.ResummarizeRequest{
		Query:    "Where is float 2902276?",
		Language: "es",
	})

	require.NoError(t, err)
	assert.Contains(t, resp.Summary, "2902276")
	assert.Contains(t, resp.Summary, "flotador")
}
