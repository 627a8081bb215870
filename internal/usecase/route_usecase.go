package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/floatchat-backend/internal/catalog"
	"github.com/floatchat-backend/internal/domain"
	"github.com/floatchat-backend/internal/domain/repository"
	"github.com/floatchat-backend/internal/pkg/errors"
	"github.com/floatchat-backend/internal/pkg/utils"
	"github.com/floatchat-backend/internal/usecase/dto"
)

// candidatePorts is how many relay ports a route answer carries; the
// nearest one is the primary route.
const candidatePorts = 4

type RouteUseCase struct {
	profileRepo repository.ProfileRepository
	ports       *catalog.Catalog
	logger      *zap.Logger
}

func NewRouteUseCase(
	profileRepo repository.ProfileRepository,
	ports *catalog.Catalog,
	logger *zap.Logger,
) *RouteUseCase {
	return &RouteUseCase{
		profileRepo: profileRepo,
		ports:       ports,
		logger:      logger,
	}
}

// Info plans relay routes from a float's latest position to a named
// destination port. Candidates stay ordered by distance from the float;
// total distance is informational and does not change the ranking.
func (uc *RouteUseCase) Info(ctx context.Context, req dto.RouteInfoRequest) (*dto.RouteInfoResponse, error) {
	dest, ok := uc.ports.FindDestination(req.Destination)
	if !ok {
		return nil, errors.ErrDestinationNotFound.WithDetails(map[string]interface{}{
			"destination": req.Destination,
		})
	}

	pos, err := uc.profileRepo.LatestPosition(ctx, req.FloatID)
	if err != nil {
		return nil, err
	}
	if !utils.ValidateCoordinates(pos.Latitude, pos.Longitude) {
		return nil, errors.ErrNoFloatPosition.WithDetails(map[string]interface{}{
			"float_id": req.FloatID,
		})
	}

	candidates := domain.FindNearestPorts(uc.ports.All(), pos.Latitude, pos.Longitude, candidatePorts)

	ports := make([]dto.RoutePort, 0, len(candidates))
	for _, c := range candidates {
		toDest := utils.HaversineDistance(c.Port.Lat, c.Port.Lon, dest.Lat, dest.Lon)
		ports = append(ports, dto.RoutePort{
			Name:                c.Port.Name,
			Lat:                 c.Port.Lat,
			Lon:                 c.Port.Lon,
			DistanceFromFloatKm: c.DistanceFromFloatKm,
			DistanceToDestKm:    toDest,
			TotalDistanceKm:     c.DistanceFromFloatKm + toDest,
			Primary:             c.Primary,
		})
	}

	uc.logger.Info("Route planned",
		zap.String("float_id", req.FloatID),
		zap.String("destination", dest.Name),
		zap.Int("candidates", len(ports)),
	)

	return &dto.RouteInfoResponse{
		FloatID:        req.FloatID,
		FloatLat:       pos.Latitude,
		FloatLon:       pos.Longitude,
		Destination:    dest.Name,
		DestinationLat: dest.Lat,
		DestinationLon: dest.Lon,
		Ports:          ports,
	}, nil
}

// Ports returns the full catalog for map rendering and destination
// pickers.
func (uc *RouteUseCase) Ports(ctx context.Context) *dto.PortListResponse {
	all := uc.ports.All()
	out := make([]dto.PortDTO, 0, len(all))
	for _, p := range all {
		out = append(out, dto.PortDTO{Name: p.Name, Lat: p.Lat, Lon: p.Lon})
	}
	return &dto.PortListResponse{Ports: out, Total: len(out)}
}
