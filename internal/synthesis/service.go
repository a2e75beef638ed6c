// Package synthesis orchestrates the scoring pipeline: argument
// feature extraction for each side, evidence aggregation,
// contradiction detection, verdict calculation, and narration.
package synthesis

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/aetherhq/synthesis/internal/argument"
	"github.com/aetherhq/synthesis/internal/contradiction"
	"github.com/aetherhq/synthesis/internal/evidence"
	"github.com/aetherhq/synthesis/internal/explain"
	"github.com/aetherhq/synthesis/internal/narrator"
	"github.com/aetherhq/synthesis/internal/verdict"
	"github.com/aetherhq/synthesis/pkg/models"
)

// Service runs the full synthesis pipeline. Each invocation is
// independent and stateless; the service holds only configuration and
// collaborator clients.
type Service struct {
	analyzer       *argument.Analyzer
	contradictions *contradiction.Service
	judge          *evidence.Judge
	explainer      *explain.Client
}

// Config holds service configuration. Judge and Explainer are
// optional collaborators; Jitter nil means production randomness.
type Config struct {
	Jitter         argument.JitterSource
	Contradictions *contradiction.Service
	Judge          *evidence.Judge
	Explainer      *explain.Client
}

// NewService creates a synthesis service.
func NewService(config Config) *Service {
	if config.Contradictions == nil {
		config.Contradictions = contradiction.NewService(nil, nil)
	}
	return &Service{
		analyzer:       argument.NewAnalyzer(config.Jitter),
		contradictions: config.Contradictions,
		judge:          config.Judge,
		explainer:      config.Explainer,
	}
}

// Synthesize evaluates the argument pair and produces a verdict
// response. It always returns a result: an unexpected internal panic
// is surfaced as the neutral fallback response, never a crash.
func (s *Service) Synthesize(ctx context.Context, req models.SynthesisRequest) (resp models.SynthesisResponse) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("synthesis panic recovered: %v", r)
			resp = fallbackResponse(fmt.Sprintf("%v", r))
		}
	}()

	collaborators := []string{}

	supportAnalysis := s.analyzer.Analyze(req.Support.Reasoning, req.Evidence)
	opposeAnalysis := s.analyzer.Analyze(req.Oppose.Reasoning, req.Evidence)

	quality := evidence.QualityScore(req.Evidence, supportAnalysis.Coverage, opposeAnalysis.Coverage)

	contra := s.contradictions.Detect(ctx, req.Support.Reasoning, req.Oppose.Reasoning)
	collaborators = append(collaborators, "contradiction:"+contra.ModelUsed)

	result := verdict.Decide(supportAnalysis, opposeAnalysis, quality, contra.IsContradictory)

	dims := s.dimensionScores(ctx, req.Evidence, supportAnalysis, opposeAnalysis, contra, &collaborators)

	reasoning := narrator.Narrate(narrator.Inputs{
		Result:             result,
		Support:            supportAnalysis,
		Oppose:             opposeAnalysis,
		ContradictionScore: contra.ContradictionScore,
		SupportExcerpt:     req.Support.Reasoning,
		OpposeExcerpt:      req.Oppose.Reasoning,
	})
	explanationModel := "template"

	if s.explainer != nil {
		explanation, err := s.explainer.Explain(ctx, explain.Inputs{
			Verdict:            string(result.Verdict),
			Confidence:         result.Confidence,
			SupportStrength:    result.SupportStrength,
			OpposeStrength:     result.OpposeStrength,
			EvidenceQuality:    quality,
			ContradictionScore: contra.ContradictionScore,
			SupportSummary:     req.Support.Reasoning,
			OpposeSummary:      req.Oppose.Reasoning,
		})
		if err != nil {
			log.Printf("explanation generation failed, keeping template: %v", err)
		} else {
			reasoning = explanation.Text
			explanationModel = explanation.ModelUsed
		}
	}
	collaborators = append(collaborators, "explanation:"+explanationModel)

	return models.SynthesisResponse{
		Success:      true,
		FinalVerdict: string(result.Verdict),
		Confidence:   result.Confidence,
		Reasoning:    reasoning,
		Scores: models.Scores{
			Support: models.SideScores{
				Strength:    supportAnalysis.Strength,
				Coverage:    supportAnalysis.Coverage,
				Consistency: supportAnalysis.Consistency,
			},
			Oppose: models.SideScores{
				Strength:    opposeAnalysis.Strength,
				Coverage:    opposeAnalysis.Coverage,
				Consistency: opposeAnalysis.Consistency,
			},
			Evidence: models.EvidenceScores{
				QualityScore:    quality,
				DimensionScores: dims,
			},
			Contradictions: models.ContradictionScores{
				ContradictionScore:   contra.ContradictionScore,
				SimilarityScore:      contra.SimilarityScore,
				EntailmentScore:      contra.EntailmentScore,
				NeutralScore:         contra.NeutralScore,
				IsContradictory:      contra.IsContradictory,
				StrongContradictions: contra.StrongContradictions,
				ModelUsed:            contra.ModelUsed,
			},
		},
		KeyEvidence: evidence.SelectKeyEvidence(req.Evidence),
		ProcessingMetadata: models.ProcessingMetadata{
			RequestID:     uuid.NewString(),
			Collaborators: collaborators,
		},
	}
}

// dimensionScores prefers the evidence judge's assessment when one is
// configured; otherwise the breakdown is derived from the argument
// analyses and the contradiction score.
func (s *Service) dimensionScores(ctx context.Context, chunks []models.EvidenceChunk,
	support, oppose argument.Analysis, contra contradiction.Analysis,
	collaborators *[]string) models.DimensionScores {

	if s.judge != nil {
		judgment := s.judge.Judge(ctx, chunks)
		*collaborators = append(*collaborators, "evidence-judge:"+judgment.ModelUsed)
		return judgment.Dimensions
	}

	return models.DimensionScores{
		FactualGrounding:    support.FactualScore,
		LogicalCoherence:    oppose.LogicalScore,
		EvidenceIntegration: (support.Coverage + oppose.Coverage) / 2,
		ArgumentStrength:    (support.Strength + oppose.Strength) / 2,
		Objectivity:         1.0 - contra.ContradictionScore,
	}
}

// fallbackResponse is the neutral result returned when the pipeline
// hits an unexpected internal error.
func fallbackResponse(errMsg string) models.SynthesisResponse {
	return models.SynthesisResponse{
		Success:      false,
		Error:        errMsg,
		FinalVerdict: string(verdict.Inconclusive),
		Confidence:   0.5,
		Reasoning:    fmt.Sprintf("Synthesis encountered an error: %s.", errMsg),
		Scores: models.Scores{
			Support: models.SideScores{Strength: 0.5, Coverage: 0.5, Consistency: 0.5},
			Oppose:  models.SideScores{Strength: 0.5, Coverage: 0.5, Consistency: 0.5},
			Evidence: models.EvidenceScores{
				QualityScore: 0.5,
			},
			Contradictions: models.ContradictionScores{
				ContradictionScore:   0.5,
				StrongContradictions: []models.StrongContradiction{},
			},
		},
		KeyEvidence: []models.KeyEvidence{},
		ProcessingMetadata: models.ProcessingMetadata{
			RequestID:     uuid.NewString(),
			Collaborators: []string{},
			FallbackUsed:  true,
		},
	}
}
