package argument

import (
	"fmt"
	"strings"
	"testing"

	"github.com/aetherhq/synthesis/pkg/models"
)

func zeroJitter() float64 { return 0 }

func chunks(n int) []models.EvidenceChunk {
	result := make([]models.EvidenceChunk, n)
	for i := range result {
		result[i] = models.EvidenceChunk{ID: fmt.Sprintf("c%d", i+1), Text: "text", Relevance: 0.5}
	}
	return result
}

func TestAnalyze_EmptyReasoning(t *testing.T) {
	a := NewAnalyzer(zeroJitter)

	analysis := a.Analyze("", chunks(3))

	if analysis.WordCount != 0 {
		t.Errorf("expected word count 0, got %d", analysis.WordCount)
	}
	if analysis.CitationCount != 0 {
		t.Errorf("expected citation count 0, got %d", analysis.CitationCount)
	}
	if analysis.Coverage != 0 {
		t.Errorf("expected coverage 0, got %f", analysis.Coverage)
	}
	// No sentiment words at all lands in the neutral consistency band.
	if analysis.Consistency != 0.7 {
		t.Errorf("expected consistency 0.7, got %f", analysis.Consistency)
	}
	if analysis.Strength < 0.1 || analysis.Strength > 0.95 {
		t.Errorf("strength %f outside [0.1, 0.95]", analysis.Strength)
	}
}

func TestAnalyze_EmptyEvidenceNeutralCoverage(t *testing.T) {
	a := NewAnalyzer(zeroJitter)

	analysis := a.Analyze("some reasoning citing [Chunk 1]", nil)

	if analysis.Coverage != 0.5 {
		t.Errorf("expected neutral coverage 0.5 with no evidence, got %f", analysis.Coverage)
	}
}

func TestAnalyze_Coverage(t *testing.T) {
	a := NewAnalyzer(zeroJitter)

	analysis := a.Analyze("see [Chunk 1] and [Chunk 2], also [Chunk 1] again", chunks(4))

	// Two distinct citations out of four chunks.
	if analysis.Coverage != 0.5 {
		t.Errorf("expected coverage 0.5, got %f", analysis.Coverage)
	}
	// Citation count records all references, including repeats.
	if analysis.CitationCount != 3 {
		t.Errorf("expected citation count 3, got %d", analysis.CitationCount)
	}
}

func TestAnalyze_CoverageMonotonic(t *testing.T) {
	a := NewAnalyzer(zeroJitter)
	pool := chunks(5)

	prev := -1.0
	text := ""
	for i := 1; i <= 5; i++ {
		text += fmt.Sprintf(" [Chunk %d]", i)
		analysis := a.Analyze(text, pool)
		if analysis.Coverage < prev {
			t.Fatalf("coverage decreased from %f to %f at %d citations", prev, analysis.Coverage, i)
		}
		prev = analysis.Coverage
	}
	if prev != 1.0 {
		t.Errorf("expected full coverage 1.0, got %f", prev)
	}
}

func TestAnalyze_CoverageClampedForBogusCitations(t *testing.T) {
	a := NewAnalyzer(zeroJitter)

	analysis := a.Analyze("[Chunk 1] [Chunk 2] [Chunk 3] [Chunk 4]", chunks(2))

	if analysis.Coverage != 1.0 {
		t.Errorf("expected coverage clamped to 1.0, got %f", analysis.Coverage)
	}
}

func TestScoreConsistency_Bands(t *testing.T) {
	a := NewAnalyzer(zeroJitter)

	tests := []struct {
		name string
		text string
		want float64
	}{
		{"positive dominant", "a strong, effective and compelling case", 0.85},
		{"negative dominant", "a weak, vague and flawed case", 0.8},
		{"mixed signals", "strong effective but weak", 0.6},
		{"no sentiment", "the quarterly numbers were reported", 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.scoreConsistency(tt.text)
			if got != tt.want {
				t.Errorf("consistency = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestScoreConsistency_JitterBounded(t *testing.T) {
	a := NewAnalyzer(func() float64 { return 0.999 })

	got := a.scoreConsistency("a strong effective compelling case")
	if got < 0.85 || got >= 0.95 {
		t.Errorf("jittered consistency %f outside [0.85, 0.95)", got)
	}
}

func TestScoreStructure(t *testing.T) {
	a := NewAnalyzer(zeroJitter)

	structured := "Overview: this document argues the point.\n\n" +
		"**First** section.\n\n**Second** section.\n\n**Third** section.\n\n" +
		"In conclusion, the case holds."
	analysis := a.Analyze(structured, nil)
	if analysis.StructureScore != 1.0 {
		t.Errorf("expected full structure score, got %f", analysis.StructureScore)
	}

	flat := a.Analyze("just one plain sentence", nil)
	if flat.StructureScore != 0 {
		t.Errorf("expected structure score 0, got %f", flat.StructureScore)
	}
}

func TestAnalyze_LongStrongArgumentBeatsShortWeakOne(t *testing.T) {
	a := NewAnalyzer(zeroJitter)
	pool := chunks(2)

	longArg := "Overview: a strong and effective case. " +
		strings.Repeat("The evidence is compelling and thorough. ", 100) +
		"[Chunk 1] [Chunk 2] In conclusion, the case is sound."
	shortArg := "This is weak and vague."

	strong := a.Analyze(longArg, pool)
	weak := a.Analyze(shortArg, pool)

	if strong.Strength <= weak.Strength {
		t.Errorf("expected strong argument (%f) to outscore weak one (%f)",
			strong.Strength, weak.Strength)
	}
}

func TestAnalyze_StrengthClamp(t *testing.T) {
	a := NewAnalyzer(func() float64 { return 0.999 })

	// Everything maxed: full coverage, long text, dense citations,
	// structure, high consistency.
	text := "Overview: a strong effective compelling robust thorough case.\n\n" +
		strings.Repeat("[Chunk 1] [Chunk 2] excellent credible sound evidence here. ", 80) +
		"\n\n**a**\n\n**b**\n\n**c** In conclusion, overall the case holds."
	analysis := a.Analyze(text, chunks(2))

	if analysis.Strength > 0.95 {
		t.Errorf("strength %f above clamp ceiling", analysis.Strength)
	}
	if analysis.Strength < 0.1 {
		t.Errorf("strength %f below clamp floor", analysis.Strength)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := NewAnalyzer(zeroJitter)
	pool := chunks(3)
	text := "A strong case citing [Chunk 1] and [Chunk 2]."

	first := a.Analyze(text, pool)
	second := a.Analyze(text, pool)

	if first != second {
		t.Errorf("pinned-jitter analysis not reproducible: %+v vs %+v", first, second)
	}
}
