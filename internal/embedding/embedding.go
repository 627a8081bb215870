// Package embedding turns summary sentences into fixed-size vectors for
// similarity search. The encoder is a hashed character n-gram model: fully
// deterministic, no external model files, and stable across processes, so
// vectors written at ingest time stay comparable at query time.
package embedding

import (
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

// Dim is the vector size stored in the summary index. Changing it
// invalidates every stored embedding.
const Dim = 256

const (
	minGram = 3
	maxGram = 5
)

// Encoder produces L2-normalized vectors of length Dim.
type Encoder struct{}

func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode vectorizes text. Equal inputs always produce equal vectors; an
// empty or non-alphanumeric input yields the zero vector.
func (e *Encoder) Encode(text string) []float32 {
	vec := make([]float32, Dim)

	tokens := tokenize(text)
	if len(tokens) == 0 {
		return vec
	}

	for _, tok := range tokens {
		// Pad so short tokens still emit at least one gram.
		padded := "^" + tok + "$"
		for n := minGram; n <= maxGram; n++ {
			if len(padded) < n {
				continue
			}
			for i := 0; i+n <= len(padded); i++ {
				h := fnv.New32a()
				h.Write([]byte(padded[i : i+n]))
				sum := h.Sum32()
				idx := sum % Dim
				// Low bit of the hash picks the sign, which keeps
				// bucket collisions from only accumulating.
				if sum&(1<<16) != 0 {
					vec[idx]++
				} else {
					vec[idx]--
				}
			}
		}
	}

	normalize(vec)
	return vec
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.' && r != '-'
	})
}

func normalize(vec []float32) {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return
	}
	norm := float32(math.Sqrt(sum))
	for i := range vec {
		vec[i] /= norm
	}
}
