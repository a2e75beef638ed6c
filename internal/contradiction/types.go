package contradiction

import "github.com/aetherhq/synthesis/pkg/models"

// Heuristic and model paths apply different thresholds for calling a
// pair of arguments contradictory: the lexical marker heuristic never
// scores above 0.6, the NLI model uses the full range.
const (
	heuristicThreshold = 0.3
	modelThreshold     = 0.6
)

// Analysis is the contradiction assessment of one support/oppose pair.
// Entailment and neutral scores are zero on the heuristic path.
type Analysis struct {
	ContradictionScore   float64
	SimilarityScore      float64
	EntailmentScore      float64
	NeutralScore         float64
	IsContradictory      bool
	StrongContradictions []models.StrongContradiction
	ModelUsed            string
}
