// Package narrator renders the verdict-specific explanation text.
// Rendering is pure template interpolation: given the same numbers it
// always produces the same string.
package narrator

import (
	"fmt"
	"math"

	"github.com/aetherhq/synthesis/internal/argument"
	"github.com/aetherhq/synthesis/internal/verdict"
)

const excerptLimit = 150

// Inputs carries everything a template interpolates.
type Inputs struct {
	Result             verdict.Result
	Support            argument.Analysis
	Oppose             argument.Analysis
	ContradictionScore float64
	SupportExcerpt     string
	OpposeExcerpt      string
}

// Narrate renders the explanation for the computed verdict.
func Narrate(in Inputs) string {
	confidencePct := int(in.Result.Confidence * 100)
	supportExcerpt := truncate(in.SupportExcerpt, excerptLimit)
	opposeExcerpt := truncate(in.OpposeExcerpt, excerptLimit)

	switch in.Result.Verdict {
	case verdict.Support:
		return fmt.Sprintf(
			"The synthesis determined Support prevails with %d%% confidence. "+
				"Support demonstrated superior argumentation (strength: %.2f vs %.2f). "+
				"The Support side presented %d words with %d evidence citations, "+
				"covering %d%% of available evidence. "+
				"Key supporting arguments emphasized: %s... "+
				"While Oppose raised valid concerns, their argument (coverage: %d%%) "+
				"was less comprehensive. Factual grounding scored %.2f, "+
				"contradiction analysis measured %.2f, "+
				"and the pipeline converged on %d%% confidence in this verdict.",
			confidencePct,
			in.Result.SupportStrength, in.Result.OpposeStrength,
			in.Support.WordCount, in.Support.CitationCount,
			int(in.Support.Coverage*100),
			supportExcerpt,
			int(in.Oppose.Coverage*100),
			in.Support.FactualScore,
			in.ContradictionScore,
			confidencePct,
		)

	case verdict.Oppose:
		return fmt.Sprintf(
			"The synthesis determined Oppose prevails with %d%% confidence. "+
				"Oppose effectively countered the arguments (strength: %.2f vs %.2f). "+
				"The Oppose side presented %d words with %d citations, "+
				"achieving %d%% evidence coverage. "+
				"Critical opposing arguments stated: %s... "+
				"These points undermined Support's case (coverage: %d%%), "+
				"revealing weaknesses through %d%% contradiction detection. "+
				"The pipeline converged on %d%% confidence.",
			confidencePct,
			in.Result.OpposeStrength, in.Result.SupportStrength,
			in.Oppose.WordCount, in.Oppose.CitationCount,
			int(in.Oppose.Coverage*100),
			opposeExcerpt,
			int(in.Support.Coverage*100),
			int(in.ContradictionScore*100),
			confidencePct,
		)

	case verdict.Inconclusive:
		return fmt.Sprintf(
			"The synthesis found arguments too balanced for a clear verdict (%d%% confidence). "+
				"Both sides presented comparable cases (Support: %.2f, Oppose: %.2f). "+
				"Support covered %d%% of evidence with %d citations, "+
				"while Oppose covered %d%% with %d citations. "+
				"Neither achieved decisive superiority. Additional context or evidence "+
				"would be needed for definitive resolution.",
			confidencePct,
			in.Result.SupportStrength, in.Result.OpposeStrength,
			int(in.Support.Coverage*100), in.Support.CitationCount,
			int(in.Oppose.Coverage*100), in.Oppose.CitationCount,
		)

	default: // mixed
		return fmt.Sprintf(
			"The synthesis produced a mixed verdict (%d%% confidence). "+
				"Support and Oppose both presented strong cases (Support: %.2f, Oppose: %.2f). "+
				"Support's %d-word argument cited %d pieces of evidence, "+
				"while Oppose's %d-word counter-argument cited %d pieces. "+
				"The %.2f contradiction score indicates nuanced disagreement. "+
				"Context-dependent factors should guide final determination given the "+
				"%.2f marginal difference.",
			confidencePct,
			in.Result.SupportStrength, in.Result.OpposeStrength,
			in.Support.WordCount, in.Support.CitationCount,
			in.Oppose.WordCount, in.Oppose.CitationCount,
			in.ContradictionScore,
			math.Abs(in.Result.StrengthDifference),
		)
	}
}

func truncate(s string, limit int) string {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
