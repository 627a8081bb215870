package embedding_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floatchat-backend/internal/embedding"
)

func dot(a, b []float32) float64 {
	var s float64
	for i := range a {
		s += float64(a[i]) * float64(b[i])
	}
	return s
}

func TestEncode_Deterministic(t *testing.T) {
	e := embedding.NewEncoder()

	a := e.Encode("Float 2902276 has 42 profiles near the equator")
	b := e.Encode("Float 2902276 has 42 profiles near the equator")

	assert.Equal(t, a, b)
}

func TestEncode_Dimension(t *testing.T) {
	e := embedding.NewEncoder()
	assert.Len(t, e.Encode("salinity profile"), embedding.Dim)
}

func TestEncode_Normalized(t *testing.T) {
	e := embedding.NewEncoder()
	v := e.Encode("temperature measurements in the Bay of Bengal")

	norm := math.Sqrt(dot(v, v))
	assert.InDelta(t, 1.0, norm, 1e-5)
}

func TestEncode_EmptyInput(t *testing.T) {
	e := embedding.NewEncoder()

	for _, in := range []string{"", "   ", "!!! ???"} {
		v := e.Encode(in)
		require.Len(t, v, embedding.Dim)
		assert.Zero(t, dot(v, v), "input %q", in)
	}
}

func TestEncode_SimilarTextsCloser(t *testing.T) {
	e := embedding.NewEncoder()

	base := e.Encode("float measuring temperature and salinity near Chennai")
	similar := e.Encode("float measuring temperature and salinity near Colombo")
	unrelated := e.Encode("quarterly revenue spreadsheet for accounting")

	assert.Greater(t, dot(base, similar), dot(base, unrelated))
}

func TestEncode_CaseInsensitive(t *testing.T) {
	e := embedding.NewEncoder()
	assert.Equal(t, e.Encode("Equator Salinity"), e.Encode("equator salinity"))
}
