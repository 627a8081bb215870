package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/floatchat-backend/internal/catalog"
	"github.com/floatchat-backend/internal/domain"
	"github.com/floatchat-backend/internal/pkg/errors"
	"github.com/floatchat-backend/internal/pkg/utils"
	"github.com/floatchat-backend/internal/usecase"
	"github.com/floatchat-backend/internal/usecase/dto"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load("")
	require.NoError(t, err)
	return c
}

func TestRouteUseCase_Info(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	ports := testCatalog(t)

	t.Run("float near Chennai routed to Singapore", func(t *testing.T) {
		mockRepo := &MockProfileRepository{}
		uc := usecase.NewRouteUseCase(mockRepo, ports, logger)

		floatLat, floatLon := 13.0, 80.5
		mockRepo.On("LatestPosition", ctx, "2902276").Return(&domain.Profile{
			FloatID:   "2902276",
			Latitude:  floatLat,
			Longitude: floatLon,
			Date:      time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
		}, nil)

		resp, err := uc.Info(ctx, dto.RouteInfoRequest{
			FloatID:     "2902276",
			Destination: "singapore",
		})

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, "Singapore", resp.Destination)
		require.Len(t, resp.Ports, 4)

		// Nearest port to a float off Chennai is Chennai itself.
		primary := resp.Ports[0]
		assert.Equal(t, "Chennai, India", primary.Name)
		assert.True(t, primary.Primary)
		for _, p := range resp.Ports[1:] {
			assert.False(t, p.Primary)
		}

		// Candidates stay ordered by float proximity.
		for i := 1; i < len(resp.Ports); i++ {
			assert.GreaterOrEqual(t,
				resp.Ports[i].DistanceFromFloatKm,
				resp.Ports[i-1].DistanceFromFloatKm,
			)
		}

		// Total distance is the float->port and port->destination legs.
		d1 := utils.HaversineDistance(floatLat, floatLon, primary.Lat, primary.Lon)
		d2 := utils.HaversineDistance(primary.Lat, primary.Lon, 1.290270, 103.851959)
		assert.InDelta(t, d1, primary.DistanceFromFloatKm, 1e-6)
		assert.InDelta(t, d2, primary.DistanceToDestKm, 1e-6)
		assert.InDelta(t, d1+d2, primary.TotalDistanceKm, 1e-6)

		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown destination", func(t *testing.T) {
		mockRepo := &MockProfileRepository{}
		uc := usecase.NewRouteUseCase(mockRepo, ports, logger)

		_, err := uc.Info(ctx, dto.RouteInfoRequest{
			FloatID:     "2902276",
			Destination: "Atlantis",
		})

		require.Error(t, err)
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, "DESTINATION_NOT_FOUND", appErr.Code)
	})

	t.Run("unknown float", func(t *testing.T) {
		mockRepo := &MockProfileRepository{}
		uc := usecase.NewRouteUseCase(mockRepo, ports, logger)

		mockRepo.On("LatestPosition", ctx, "999999").
			Return(nil, errors.ErrFloatNotFound)

		_, err := uc.Info(ctx, dto.RouteInfoRequest{
			FloatID:     "999999",
			Destination: "Singapore",
		})

		assert.Equal(t, errors.ErrFloatNotFound, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("float without valid position", func(t *testing.T) {
		mockRepo := &MockProfileRepository{}
		uc := usecase.NewRouteUseCase(mockRepo, ports, logger)

		mockRepo.On("LatestPosition", ctx, "2902277").Return(&domain.Profile{
			FloatID:   "2902277",
			Latitude:  200,
			Longitude: 80,
		}, nil)

		_, err := uc.Info(ctx, dto.RouteInfoRequest{
			FloatID:     "2902277",
			Destination: "Singapore",
		})

		require.Error(t, err)
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, "NO_FLOAT_POSITION", appErr.Code)
	})
}

func TestRouteUseCase_Ports(t *testing.T) {
	uc := usecase.NewRouteUseCase(&MockProfileRepository{}, testCatalog(t), zap.NewNop())

	resp := uc.Ports(context.Background())

	assert.Equal(t, 15, resp.Total)
	assert.Len(t, resp.Ports, 15)
}
