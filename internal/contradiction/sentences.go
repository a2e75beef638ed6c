package contradiction

import (
	"regexp"
	"strings"

	"github.com/aetherhq/synthesis/pkg/models"
)

var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

const (
	minSentenceLength       = 20
	maxSentencesPerSide     = 5
	maxStrongContradictions = 3
	statementExcerptLimit   = 150
)

// Sentiment cues used to pair up directly opposing statements.

func assertiveWords() []string {
	return []string{"good", "strong", "effective", "successful", "beneficial", "positive", "yes", "should"}
}

func dissentingWords() []string {
	return []string{"bad", "weak", "ineffective", "unsuccessful", "harmful", "negative", "no", "should not"}
}

// mineStrongContradictions pairs support sentences against oppose
// sentences with opposite sentiment. Only worthwhile when the model
// already scored the pair as substantially contradictory.
func mineStrongContradictions(supportText, opposeText string, contradictionScore float64) []models.StrongContradiction {
	found := []models.StrongContradiction{}

	if contradictionScore < 0.5 {
		return found
	}

	confidence := contradictionScore + 0.1
	if confidence > 0.95 {
		confidence = 0.95
	}

	supportSentences := splitSentences(supportText)
	opposeSentences := splitSentences(opposeText)

	for _, s := range supportSentences {
		for _, o := range opposeSentences {
			if !areOpposed(s, o) {
				continue
			}
			found = append(found, models.StrongContradiction{
				SupportStatement: truncate(s, statementExcerptLimit),
				OpposeStatement:  truncate(o, statementExcerptLimit),
				Confidence:       confidence,
			})
			if len(found) >= maxStrongContradictions {
				return found
			}
		}
	}

	return found
}

// splitSentences breaks text on sentence punctuation, dropping
// fragments too short to be meaningful statements.
func splitSentences(text string) []string {
	parts := sentenceBoundary.Split(text, -1)

	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) > minSentenceLength {
			sentences = append(sentences, p)
		}
		if len(sentences) >= maxSentencesPerSide {
			break
		}
	}
	return sentences
}

// areOpposed reports whether two sentences carry opposite sentiment.
func areOpposed(a, b string) bool {
	aLower := strings.ToLower(a)
	bLower := strings.ToLower(b)

	aPos := containsAnyWord(aLower, assertiveWords())
	aNeg := containsAnyWord(aLower, dissentingWords())
	bPos := containsAnyWord(bLower, assertiveWords())
	bNeg := containsAnyWord(bLower, dissentingWords())

	return (aPos && bNeg) || (aNeg && bPos)
}

func containsAnyWord(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func truncate(s string, limit int) string {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
