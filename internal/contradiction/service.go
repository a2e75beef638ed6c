package contradiction

import (
	"context"
	"log"
)

// Service selects between the NLI model and the lexical heuristic by
// availability. Model failures degrade to the heuristic; detection
// never errors upward.
type Service struct {
	estimator *Estimator
	nli       *NLIClient
}

// NewService creates a detection service. A nil NLI client pins the
// service to the heuristic path.
func NewService(estimator *Estimator, nli *NLIClient) *Service {
	if estimator == nil {
		estimator = NewEstimator()
	}
	return &Service{
		estimator: estimator,
		nli:       nli,
	}
}

// Detect analyzes the argument pair for contradictions.
func (s *Service) Detect(ctx context.Context, supportText, opposeText string) Analysis {
	if s.nli == nil {
		return s.estimator.Estimate(supportText, opposeText)
	}

	result, err := s.nli.Detect(ctx, supportText, opposeText)
	if err != nil {
		log.Printf("NLI detection failed, falling back to heuristic: %v", err)
		return s.estimator.Estimate(supportText, opposeText)
	}

	return Analysis{
		ContradictionScore:   result.ContradictionScore,
		SimilarityScore:      result.SimilarityScore,
		EntailmentScore:      result.EntailmentScore,
		NeutralScore:         result.NeutralScore,
		IsContradictory:      result.ContradictionScore > modelThreshold,
		StrongContradictions: mineStrongContradictions(supportText, opposeText, result.ContradictionScore),
		ModelUsed:            s.nli.Name(),
	}
}
