package utils_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/floatchat-backend/internal/pkg/utils"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("zero distance for identical points", func(t *testing.T) {
		assert.InDelta(t, 0, utils.HaversineDistance(13.0827, 80.2707, 13.0827, 80.2707), 1e-9)
	})

	t.Run("Chennai to Colombo", func(t *testing.T) {
		// Reference value from a geodesy calculator, ~690 km.
		d := utils.HaversineDistance(13.0827, 80.2707, 6.9271, 79.8612)
		assert.InDelta(t, 687, d, 10)
	})

	t.Run("Chennai to Singapore", func(t *testing.T) {
		d := utils.HaversineDistance(13.0827, 80.2707, 1.290270, 103.851959)
		assert.InDelta(t, 2910, d, 50)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := utils.HaversineDistance(-29.8587, 31.0218, 51.9244, 4.4777)
		b := utils.HaversineDistance(51.9244, 4.4777, -29.8587, 31.0218)
		assert.InDelta(t, a, b, 1e-9)
	})
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, utils.ValidateCoordinates(0, 0))
	assert.True(t, utils.ValidateCoordinates(-90, 180))
	assert.False(t, utils.ValidateCoordinates(91, 0))
	assert.False(t, utils.ValidateCoordinates(0, -181))
	assert.False(t, utils.ValidateCoordinates(math.NaN(), 10))
	assert.False(t, utils.ValidateCoordinates(10, math.Inf(1)))
}
