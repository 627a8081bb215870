package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/floatchat-backend/internal/domain"
)

var testPorts = []domain.Port{
	{Name: "Chennai, India", Lat: 13.0827, Lon: 80.2707},
	{Name: "Colombo, Sri Lanka", Lat: 6.9271, Lon: 79.8612},
	{Name: "Singapore", Lat: 1.290270, Lon: 103.851959},
	{Name: "Rotterdam, Netherlands", Lat: 51.9244, Lon: 4.4777},
}

func TestFindNearestPorts_SortedAscending(t *testing.T) {
	candidates := domain.FindNearestPorts(testPorts, -10.0, 85.0, 4)
	assert.Len(t, candidates, 4)
	for i := 1; i < len(candidates); i++ {
		assert.LessOrEqual(t,
			candidates[i-1].DistanceFromFloatKm,
			candidates[i].DistanceFromFloatKm,
		)
	}
}

func TestFindNearestPorts_PrimaryIsFirstOnly(t *testing.T) {
	candidates := domain.FindNearestPorts(testPorts, 13.0, 80.0, 4)
	assert.True(t, candidates[0].Primary)
	for _, c := range candidates[1:] {
		assert.False(t, c.Primary)
	}
}

func TestFindNearestPorts_FloatAtChennai(t *testing.T) {
	candidates := domain.FindNearestPorts(testPorts, 13.0827, 80.2707, 4)
	assert.Equal(t, "Chennai, India", candidates[0].Port.Name)
	assert.InDelta(t, 0, candidates[0].DistanceFromFloatKm, 0.01)
}

func TestFindNearestPorts_InvalidCoordinates(t *testing.T) {
	assert.Empty(t, domain.FindNearestPorts(testPorts, math.NaN(), 10, 4))
	assert.Empty(t, domain.FindNearestPorts(testPorts, 10, math.Inf(-1), 4))
	assert.Empty(t, domain.FindNearestPorts(testPorts, 95, 10, 4))
}

func TestFindNearestPorts_NLargerThanCatalog(t *testing.T) {
	candidates := domain.FindNearestPorts(testPorts, 0, 0, 10)
	assert.Len(t, candidates, len(testPorts))
}

func TestFindNearestPorts_ZeroN(t *testing.T) {
	assert.Empty(t, domain.FindNearestPorts(testPorts, 0, 0, 0))
}
