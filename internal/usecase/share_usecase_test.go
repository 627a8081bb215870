package usecase_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/floatchat-backend/internal/config"
	"github.com/floatchat-backend/internal/domain"
	"github.com/floatchat-backend/internal/pkg/errors"
	"github.com/floatchat-backend/internal/usecase"
	"github.com/floatchat-backend/internal/usecase/dto"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func shareConfig() config.ShareConfig {
	return config.ShareConfig{
		PublicBaseURL: "http://localhost:8501",
		HistoryTTL:    time.Hour,
		QRSize:        256,
	}
}

func sampleHistory() []domain.ChatMessage {
	return []domain.ChatMessage{
		{Role: domain.RoleAssistant, Content: "Hello! What ocean data are you curious about?"},
		{Role: domain.RoleUser, Content: "Where is float 2902276?"},
		{Role: domain.RoleAssistant, Content: "Latest reported position for float 2902276."},
	}
}

func TestShareUseCase_Create(t *testing.T) {
	ctx := context.Background()
	cache := &MockCacheRepository{}
	uc := usecase.NewShareUseCase(cache, shareConfig(), zap.NewNop())

	history := sampleHistory()
	cache.On("SetHistory", ctx, mock.Anything, history, time.Hour).Return(nil)

	resp, err := uc.Create(ctx, dto.ShareRequest{History: history})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.HistoryID)
	assert.Contains(t, resp.ShareURL, "http://localhost:8501?history_id="+resp.HistoryID)
	assert.True(t, bytes.HasPrefix(resp.QRPNG, pngMagic), "QR payload must be a PNG")
	cache.AssertExpectations(t)
}

func TestShareUseCase_Create_EmptyHistory(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewShareUseCase(&MockCacheRepository{}, shareConfig(), zap.NewNop())

	t.Run("no messages", func(t *testing.T) {
		_, err := uc.Create(ctx, dto.ShareRequest{})
		assert.Equal(t, errors.ErrEmptyHistory, err)
	})

	t.Run("welcome message only", func(t *testing.T) {
		_, err := uc.Create(ctx, dto.ShareRequest{History: []domain.ChatMessage{
			{Role: domain.RoleAssistant, Content: "Hello!"},
		}})
		assert.Equal(t, errors.ErrEmptyHistory, err)
	})

	t.Run("map state entries do not count", func(t *testing.T) {
		_, err := uc.Create(ctx, dto.ShareRequest{History: []domain.ChatMessage{
			{Role: domain.RoleAssistant, Content: "Hello!"},
			{Role: domain.RoleMapState, MapID: "2902276"},
		}})
		assert.Equal(t, errors.ErrEmptyHistory, err)
	})
}

func TestShareUseCase_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		cache := &MockCacheRepository{}
		uc := usecase.NewShareUseCase(cache, shareConfig(), zap.NewNop())

		history := sampleHistory()
		cache.On("GetHistory", ctx, "abc-123").Return(history, nil)

		resp, err := uc.Get(ctx, "abc-123")

		require.NoError(t, err)
		assert.Equal(t, "abc-123", resp.HistoryID)
		assert.Len(t, resp.History, 3)
	})

	t.Run("missing or expired", func(t *testing.T) {
		cache := &MockCacheRepository{}
		uc := usecase.NewShareUseCase(cache, shareConfig(), zap.NewNop())

		cache.On("GetHistory", ctx, "gone").Return(nil, nil)

		_, err := uc.Get(ctx, "gone")
		assert.Equal(t, errors.ErrHistoryNotFound, err)
	})
}

func TestShareUseCase_RoundTripPreservesMapState(t *testing.T) {
	ctx := context.Background()
	cache := &MockCacheRepository{}
	uc := usecase.NewShareUseCase(cache, shareConfig(), zap.NewNop())

	history := append(sampleHistory(), domain.ChatMessage{
		Role:    domain.RoleMapState,
		MapID:   "2902276",
		MapDest: "Singapore",
	})

	var storedID string
	cache.On("SetHistory", ctx, mock.Anything, history, time.Hour).
		Run(func(args mock.Arguments) { storedID = args.String(1) }).
		Return(nil)

	created, err := uc.Create(ctx, dto.ShareRequest{History: history})
	require.NoError(t, err)
	require.Equal(t, created.HistoryID, storedID)

	cache.On("GetHistory", ctx, storedID).Return(history, nil)

	loaded, err := uc.Get(ctx, storedID)
	require.NoError(t, err)
	last := loaded.History[len(loaded.History)-1]
	assert.Equal(t, domain.RoleMapState, last.Role)
	assert.Equal(t, "2902276", last.MapID)
	assert.Equal(t, "Singapore", last.MapDest)
}
