// Package verdict turns the extracted argument features into a final
// verdict and confidence. Decide is a pure function: identical inputs
// always produce identical results.
package verdict

import (
	"math"

	"github.com/aetherhq/synthesis/internal/argument"
)

// Verdict is the categorical outcome of comparing the two sides.
type Verdict string

const (
	Support      Verdict = "support"
	Oppose       Verdict = "oppose"
	Mixed        Verdict = "mixed"
	Inconclusive Verdict = "inconclusive"
)

// Result is the engine's terminal output; it is never mutated after
// creation.
type Result struct {
	Verdict            Verdict `json:"verdict"`
	Confidence         float64 `json:"confidence"`
	SupportStrength    float64 `json:"support_strength"`
	OpposeStrength     float64 `json:"oppose_strength"`
	StrengthDifference float64 `json:"strength_difference"`
}

// Adjustment and band constants. The adjustments compound in order;
// changing their sequence changes observable verdicts.
const (
	coverageFloor        = 0.6
	coverageWeight       = 0.4
	contradictionPenalty = 0.9

	confidenceBase           = 0.4
	confidenceDiffWeight     = 0.8
	confidenceEvidenceWeight = 0.3
	confidenceFloor          = 0.1
	confidenceCeiling        = 0.95

	inconclusiveBand = 0.05
	mixedBand        = 0.12
	decisiveBand     = 0.25
)

// Decide combines both sides' features, the evidence quality, and the
// contradiction signal into a verdict.
//
// Each adjustment multiplies the result of the previous one, starting
// from the raw strength: consistency first, then coverage, then the
// contradiction penalty. The verdict ladder is evaluated top to
// bottom with first match winning; after the inconclusive and mixed
// bands and the two decisive bands, only 0.12 <= |diff| <= 0.25 can
// reach the final sign comparison, so any additional mixed band below
// 0.15 at that point would be unreachable.
func Decide(support, oppose argument.Analysis, evidenceQuality float64, contradictory bool) Result {
	supportStrength := support.Strength * support.Consistency
	opposeStrength := oppose.Strength * oppose.Consistency

	supportStrength *= coverageFloor + coverageWeight*support.Coverage
	opposeStrength *= coverageFloor + coverageWeight*oppose.Coverage

	if contradictory {
		supportStrength *= contradictionPenalty
		opposeStrength *= contradictionPenalty
	}

	diff := supportStrength - opposeStrength

	confidence := confidenceBase + math.Abs(diff)*confidenceDiffWeight + evidenceQuality*confidenceEvidenceWeight
	confidence = math.Max(confidenceFloor, math.Min(confidence, confidenceCeiling))

	var v Verdict
	switch {
	case math.Abs(diff) < inconclusiveBand:
		v = Inconclusive
	case math.Abs(diff) < mixedBand:
		v = Mixed
	case diff > decisiveBand:
		v = Support
	case diff < -decisiveBand:
		v = Oppose
	case diff > 0:
		v = Support
	default:
		v = Oppose
	}

	return Result{
		Verdict:            v,
		Confidence:         confidence,
		SupportStrength:    supportStrength,
		OpposeStrength:     opposeStrength,
		StrengthDifference: diff,
	}
}
