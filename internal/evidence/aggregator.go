package evidence

import (
	"gonum.org/v1/gonum/stat"

	"github.com/aetherhq/synthesis/pkg/models"
)

// QualityScore combines evidence relevance with how much of the pool
// both sides actually used. The result is bounded to [0.3, 0.9]; an
// empty pool returns the neutral 0.5 directly.
func QualityScore(chunks []models.EvidenceChunk, supportCoverage, opposeCoverage float64) float64 {
	if len(chunks) == 0 {
		return 0.5
	}

	relevances := make([]float64, len(chunks))
	for i, c := range chunks {
		relevances[i] = c.Relevance
	}
	avgRelevance := stat.Mean(relevances, nil)

	avgCoverage := (supportCoverage + opposeCoverage) / 2

	quality := avgRelevance*0.6 + avgCoverage*0.4
	return clamp(quality, 0.3, 0.9)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
