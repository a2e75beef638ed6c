package evidence

import (
	"context"
	"strings"

	"github.com/aetherhq/synthesis/internal/embeddings"
	"github.com/aetherhq/synthesis/pkg/models"
)

// Classification is the output of the evidence classifier: how
// confidently the evidence pool leans toward one side.
type Classification struct {
	Confidence float64 `json:"confidence"`
	Bias       string  `json:"bias"` // support, oppose, neutral
}

// Classifier scores the directional bias of evidence texts. Remote
// implementations wrap a hosted model; absence or failure degrades to
// the built-in keyword heuristic.
type Classifier interface {
	Classify(ctx context.Context, texts []string) (Classification, error)
	Name() string
}

// Encoder produces sentence embeddings, used for the coherence
// dimension. A nil encoder selects the word-overlap fallback.
type Encoder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Judgment is the multi-dimensional quality assessment of an evidence
// pool.
type Judgment struct {
	SupportScore float64                `json:"support_score"`
	OpposeScore  float64                `json:"oppose_score"`
	Dimensions   models.DimensionScores `json:"dimension_scores"`
	Winner       string                 `json:"winner"`
	Confidence   float64                `json:"confidence"`
	ModelUsed    string                 `json:"model_used"`
}

// Judge assesses evidence quality across named dimensions. Both
// collaborators are optional.
type Judge struct {
	classifier Classifier
	encoder    Encoder
}

// NewJudge creates a judge. Nil collaborators select heuristic paths.
func NewJudge(classifier Classifier, encoder Encoder) *Judge {
	return &Judge{classifier: classifier, encoder: encoder}
}

// Judge scores the evidence pool. It never returns an error: an empty
// or text-free pool yields the neutral judgment, and collaborator
// failures fall back to heuristics.
func (j *Judge) Judge(ctx context.Context, chunks []models.EvidenceChunk) Judgment {
	texts := make([]string, 0, len(chunks))
	for _, c := range chunks {
		if c.Text != "" {
			texts = append(texts, c.Text)
		}
	}
	if len(texts) == 0 {
		return neutralJudgment()
	}

	classification, modelUsed := j.classify(ctx, texts)

	dims := models.DimensionScores{
		FactualGrounding:    assessFactualGrounding(texts),
		LogicalCoherence:    j.assessCoherence(ctx, texts),
		EvidenceIntegration: assessIntegration(texts),
		Objectivity:         assessObjectivity(texts),
	}
	dims.ArgumentStrength = dims.FactualGrounding*0.4 + dims.LogicalCoherence*0.4 + dims.EvidenceIntegration*0.2

	avg := (dims.FactualGrounding + dims.LogicalCoherence + dims.EvidenceIntegration +
		dims.ArgumentStrength + dims.Objectivity) / 5
	supportScore := clamp(avg, 0.3, 0.9)
	opposeScore := 1.0 - supportScore

	// A confident directional classification amplifies the leaning side.
	if classification.Confidence > 0.6 {
		switch classification.Bias {
		case "support":
			supportScore = clamp(supportScore*1.2, 0.05, 0.95)
			opposeScore = clamp(opposeScore*0.8, 0.05, 0.95)
		case "oppose":
			opposeScore = clamp(opposeScore*1.2, 0.05, 0.95)
			supportScore = clamp(supportScore*0.8, 0.05, 0.95)
		}
	}

	winner := "support"
	if opposeScore > supportScore {
		winner = "oppose"
	}

	return Judgment{
		SupportScore: supportScore,
		OpposeScore:  opposeScore,
		Dimensions:   dims,
		Winner:       winner,
		Confidence:   abs(supportScore - opposeScore),
		ModelUsed:    modelUsed,
	}
}

func (j *Judge) classify(ctx context.Context, texts []string) (Classification, string) {
	if j.classifier != nil {
		c, err := j.classifier.Classify(ctx, texts)
		if err == nil {
			return c, j.classifier.Name()
		}
	}
	return heuristicClassification(texts), "heuristic"
}

// heuristicClassification estimates directional bias from sentiment
// keyword counts when no classifier is available.
func heuristicClassification(texts []string) Classification {
	pos, neg := 0, 0
	for _, text := range texts {
		lower := strings.ToLower(text)
		for _, w := range judgePositiveWords() {
			if strings.Contains(lower, w) {
				pos++
			}
		}
		for _, w := range judgeNegativeWords() {
			if strings.Contains(lower, w) {
				neg++
			}
		}
	}

	total := pos + neg
	if total == 0 {
		return Classification{Confidence: 0.5, Bias: "neutral"}
	}

	bias := "support"
	if neg > pos {
		bias = "oppose"
	}
	return Classification{
		Confidence: abs(float64(pos-neg)) / float64(total),
		Bias:       bias,
	}
}

// assessFactualGrounding checks for numbers and research-citation
// wording in each text.
func assessFactualGrounding(texts []string) float64 {
	indicators := 0
	for _, text := range texts {
		if strings.ContainsAny(text, "0123456789") {
			indicators++
		}
		lower := strings.ToLower(text)
		for _, w := range factualIndicators() {
			if strings.Contains(lower, w) {
				indicators++
				break
			}
		}
	}
	return clamp(float64(indicators)/float64(len(texts)*2), 0, 1)
}

// assessCoherence measures how semantically connected adjacent chunks
// are. With an encoder it averages adjacent-pair cosine similarity on
// a 0-1 scale; otherwise it falls back to leading-word overlap.
func (j *Judge) assessCoherence(ctx context.Context, texts []string) float64 {
	if len(texts) < 2 {
		return 0.7
	}

	if j.encoder != nil {
		vectors, err := j.encoder.EmbedTexts(ctx, texts)
		if err == nil && len(vectors) == len(texts) {
			sum := 0.0
			for i := 0; i < len(vectors)-1; i++ {
				sim := embeddings.CosineSimilarity(vectors[i], vectors[i+1])
				sum += (sim + 1) / 2
			}
			return sum / float64(len(vectors)-1)
		}
	}

	// Fallback: words common to the first ten tokens of every text.
	common := leadingWordSet(texts[0])
	for _, text := range texts[1:] {
		next := leadingWordSet(text)
		for w := range common {
			if _, ok := next[w]; !ok {
				delete(common, w)
			}
		}
	}
	return clamp(float64(len(common))/5, 0, 1)
}

func leadingWordSet(text string) map[string]struct{} {
	words := strings.Fields(strings.ToLower(text))
	if len(words) > 10 {
		words = words[:10]
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// assessIntegration counts discourse connectors linking the chunks.
func assessIntegration(texts []string) float64 {
	count := 0
	for _, text := range texts {
		lower := strings.ToLower(text)
		for _, conn := range connectorWords() {
			if strings.Contains(lower, conn) {
				count++
			}
		}
	}
	return clamp(float64(count)/float64(len(texts)), 0, 1)
}

// assessObjectivity penalizes emotionally loaded wording.
func assessObjectivity(texts []string) float64 {
	count := 0
	for _, text := range texts {
		lower := strings.ToLower(text)
		for _, w := range subjectiveWords() {
			if strings.Contains(lower, w) {
				count++
			}
		}
	}
	penalty := float64(count) / float64(len(texts)*2)
	if penalty > 0.8 {
		penalty = 0.8
	}
	return 1.0 - penalty
}

func neutralJudgment() Judgment {
	return Judgment{
		SupportScore: 0.5,
		OpposeScore:  0.5,
		Dimensions: models.DimensionScores{
			FactualGrounding:    0.5,
			LogicalCoherence:    0.5,
			EvidenceIntegration: 0.5,
			ArgumentStrength:    0.5,
			Objectivity:         0.5,
		},
		Winner:     "neutral",
		Confidence: 0.5,
		ModelUsed:  "fallback",
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
