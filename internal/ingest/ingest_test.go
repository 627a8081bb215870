package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floatchat-backend/internal/domain"
)

func TestJuldToTime(t *testing.T) {
	t.Run("epoch", func(t *testing.T) {
		assert.Equal(t, time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC), juldToTime(0))
	})

	t.Run("whole days", func(t *testing.T) {
		assert.Equal(t, time.Date(1950, 1, 11, 0, 0, 0, 0, time.UTC), juldToTime(10))
	})

	t.Run("fractional day", func(t *testing.T) {
		got := juldToTime(0.5)
		assert.Equal(t, time.Date(1950, 1, 1, 12, 0, 0, 0, time.UTC), got)
	})

	t.Run("modern date", func(t *testing.T) {
		// 2023-01-01 is 26663 days after the 1950 epoch.
		got := juldToTime(26663)
		assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), got)
	})
}

func TestAssembleProfiles(t *testing.T) {
	cycles := []int32{7}
	juld := []float64{26663}
	lats := []float64{1.5}
	lons := []float64{80.25}
	pres := []float32{5, 100, 99999}
	temp := []float32{28.1, 15.2, 4.0}
	psal := []float32{34.5, 35.0, 34.9}

	profiles := assembleProfiles("2902276", cycles, juld, lats, lons, pres, temp, psal, 3)

	require.Len(t, profiles, 2, "level with fill pressure must be dropped")
	assert.Equal(t, "2902276", profiles[0].FloatID)
	assert.Equal(t, 7, profiles[0].CycleNumber)
	assert.Equal(t, 1.5, profiles[0].Latitude)
	assert.Equal(t, 80.25, profiles[0].Longitude)
	assert.Equal(t, 5.0, profiles[0].Pressure)
	assert.InDelta(t, 28.1, profiles[0].Temperature, 1e-4)
	assert.InDelta(t, 34.5, profiles[0].Salinity, 1e-4)
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), profiles[0].Date)
}

func TestAssembleProfiles_FillValues(t *testing.T) {
	t.Run("fill temperature dropped", func(t *testing.T) {
		profiles := assembleProfiles("X",
			[]int32{1}, []float64{0}, []float64{0}, []float64{0},
			[]float32{10}, []float32{99999}, []float32{35}, 1)
		assert.Empty(t, profiles)
	})

	t.Run("fill salinity dropped", func(t *testing.T) {
		profiles := assembleProfiles("X",
			[]int32{1}, []float64{0}, []float64{0}, []float64{0},
			[]float32{10}, []float32{20}, []float32{99999}, 1)
		assert.Empty(t, profiles)
	})
}

func TestAssembleProfiles_InvalidPosition(t *testing.T) {
	t.Run("fill latitude", func(t *testing.T) {
		profiles := assembleProfiles("X",
			[]int32{1}, []float64{0}, []float64{99999}, []float64{80},
			[]float32{10}, []float32{20}, []float32{35}, 1)
		assert.Empty(t, profiles)
	})

	t.Run("out of range longitude", func(t *testing.T) {
		profiles := assembleProfiles("X",
			[]int32{1}, []float64{0}, []float64{10}, []float64{250},
			[]float32{10}, []float32{20}, []float32{35}, 1)
		assert.Empty(t, profiles)
	})
}

func TestAssembleProfiles_MultipleProfilesPerFile(t *testing.T) {
	profiles := assembleProfiles("2902276",
		[]int32{1, 2},
		[]float64{0, 1},
		[]float64{1.0, 1.1},
		[]float64{80.0, 80.1},
		[]float32{5, 10, 5, 10},
		[]float32{28, 27, 26, 25},
		[]float32{34, 34, 35, 35},
		2)

	require.Len(t, profiles, 4)
	assert.Equal(t, 1, profiles[0].CycleNumber)
	assert.Equal(t, 2, profiles[2].CycleNumber)
	assert.Equal(t, 1.1, profiles[2].Latitude)
}

func TestBuildSummary(t *testing.T) {
	profiles := []domain.Profile{
		{FloatID: "2902276", CycleNumber: 1, Latitude: 1.5, Longitude: 80.2,
			Date: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
			Pressure: 5, Temperature: 28.4, Salinity: 34.5},
		{FloatID: "2902276", CycleNumber: 2, Latitude: 1.6, Longitude: 80.3,
			Date: time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
			Pressure: 1200, Temperature: 4.1, Salinity: 35.1},
	}

	s := BuildSummary("2902276", profiles)

	assert.Contains(t, s, "2902276")
	assert.Contains(t, s, "2 measurements")
	assert.Contains(t, s, "2 cycles")
	assert.Contains(t, s, "2023-04-01")
	assert.Contains(t, s, "4.1 to 28.4")
	assert.Contains(t, s, "34.50 to 35.10")
	assert.Contains(t, s, "1200 dbar")
}

func TestBuildSummary_Empty(t *testing.T) {
	s := BuildSummary("2902276", nil)
	assert.Contains(t, s, "no usable measurements")
}
