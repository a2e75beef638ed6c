package embeddings

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// CosineSimilarity calculates the cosine similarity between two
// vectors. Returns 0 for mismatched or empty inputs.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	af := make([]float64, len(a))
	bf := make([]float64, len(b))
	for i := range a {
		af[i] = float64(a[i])
		bf[i] = float64(b[i])
	}

	dot := floats.Dot(af, bf)
	magA := math.Sqrt(floats.Dot(af, af))
	magB := math.Sqrt(floats.Dot(bf, bf))

	if magA == 0 || magB == 0 {
		return 0
	}

	return dot / (magA * magB)
}
