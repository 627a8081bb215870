package domain

import (
	"sort"

	"github.com/floatchat-backend/internal/pkg/utils"
)

// RouteCandidate is a relay port annotated with leg distances. Candidates
// are ranked by distance from the float, not by total route length; the
// first candidate is the primary route.
type RouteCandidate struct {
	Port                Port    `json:"port"`
	DistanceFromFloatKm float64 `json:"distance_from_float_km"`
	DistanceToDestKm    float64 `json:"distance_to_dest_km"`
	TotalDistanceKm     float64 `json:"total_distance_km"`
	Primary             bool    `json:"primary"`
}

// RoutePlan is the full primary + alternates answer for one map render.
type RoutePlan struct {
	FloatID     string           `json:"float_id"`
	FloatLat    float64          `json:"float_lat"`
	FloatLon    float64          `json:"float_lon"`
	Destination Port             `json:"destination"`
	Candidates  []RouteCandidate `json:"candidates"`
}

// FindNearestPorts returns the n geodesically nearest catalog ports to the
// given position, ascending by distance with catalog order breaking ties.
// Non-finite or out-of-range coordinates yield an empty slice.
func FindNearestPorts(catalog []Port, lat, lon float64, n int) []RouteCandidate {
	if !utils.ValidateCoordinates(lat, lon) {
		return nil
	}
	if n <= 0 {
		return nil
	}

	candidates := make([]RouteCandidate, 0, len(catalog))
	for _, port := range catalog {
		candidates = append(candidates, RouteCandidate{
			Port:                port,
			DistanceFromFloatKm: utils.HaversineDistance(lat, lon, port.Lat, port.Lon),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].DistanceFromFloatKm < candidates[j].DistanceFromFloatKm
	})

	if n < len(candidates) {
		candidates = candidates[:n]
	}
	if len(candidates) > 0 {
		candidates[0].Primary = true
	}
	return candidates
}
