package contradiction

import (
	"strings"

	"github.com/aetherhq/synthesis/pkg/models"
)

// discourseMarkers are the contrast connectives the heuristic looks
// for in the oppose text.
func discourseMarkers() []string {
	return []string{"however", "but", "although", "despite", "conversely", "on the contrary"}
}

// markerWeight scales marker presence into a contradiction score;
// markerCeiling keeps the heuristic path below the model path's range.
const (
	markerWeight  = 0.15
	markerCeiling = 0.6
)

// Estimator derives contradiction scores from lexical overlap and
// discourse markers, without any model call.
type Estimator struct{}

// NewEstimator creates a heuristic contradiction estimator.
func NewEstimator() *Estimator {
	return &Estimator{}
}

// Estimate scores how directly the oppose text contradicts the support
// text. Strong contradictions are never populated on this path.
func (e *Estimator) Estimate(supportText, opposeText string) Analysis {
	similarity := jaccardSimilarity(supportText, opposeText)

	opposeLower := strings.ToLower(opposeText)
	markerCount := 0
	for _, marker := range discourseMarkers() {
		if strings.Contains(opposeLower, marker) {
			markerCount++
		}
	}

	score := float64(markerCount) * markerWeight
	if score > markerCeiling {
		score = markerCeiling
	}

	return Analysis{
		ContradictionScore:   score,
		SimilarityScore:      similarity,
		IsContradictory:      score > heuristicThreshold,
		StrongContradictions: []models.StrongContradiction{},
		ModelUsed:            "heuristic",
	}
}

// jaccardSimilarity computes word-set overlap between the two texts.
func jaccardSimilarity(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)

	union := len(setB)
	common := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			common++
		} else {
			union++
		}
	}

	if union == 0 {
		return 0
	}
	return float64(common) / float64(union)
}

func wordSet(text string) map[string]struct{} {
	words := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
