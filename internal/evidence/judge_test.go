package evidence

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aetherhq/synthesis/pkg/models"
)

type fakeClassifier struct {
	classification Classification
	err            error
}

func (f fakeClassifier) Classify(ctx context.Context, texts []string) (Classification, error) {
	return f.classification, f.err
}

func (f fakeClassifier) Name() string { return "fake" }

type fakeEncoder struct {
	vectors [][]float32
	err     error
}

func (f fakeEncoder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	return f.vectors, f.err
}

func evidencePool(texts ...string) []models.EvidenceChunk {
	chunks := make([]models.EvidenceChunk, len(texts))
	for i, text := range texts {
		chunks[i] = models.EvidenceChunk{ID: "c", Text: text, Relevance: 0.5}
	}
	return chunks
}

func TestJudge_EmptyEvidenceNeutral(t *testing.T) {
	j := NewJudge(nil, nil)

	got := j.Judge(context.Background(), nil)

	if got.SupportScore != 0.5 || got.OpposeScore != 0.5 {
		t.Errorf("scores = %f/%f, want 0.5/0.5", got.SupportScore, got.OpposeScore)
	}
	if got.Winner != "neutral" {
		t.Errorf("winner = %s, want neutral", got.Winner)
	}
	if got.ModelUsed != "fallback" {
		t.Errorf("model = %s, want fallback", got.ModelUsed)
	}
}

func TestJudge_TextFreeChunksNeutral(t *testing.T) {
	j := NewJudge(nil, nil)

	got := j.Judge(context.Background(), []models.EvidenceChunk{{ID: "c", Relevance: 0.9}})

	if got.Winner != "neutral" {
		t.Errorf("winner = %s, want neutral for text-free chunks", got.Winner)
	}
}

func TestJudge_HeuristicScoresBounded(t *testing.T) {
	j := NewJudge(nil, nil)

	got := j.Judge(context.Background(), evidencePool(
		"The study found strong growth of 12% according to the data.",
		"However, research data additionally suggests good outcomes.",
	))

	if got.SupportScore < 0.05 || got.SupportScore > 0.95 {
		t.Errorf("support score %f out of range", got.SupportScore)
	}
	if math.Abs(got.Confidence-math.Abs(got.SupportScore-got.OpposeScore)) > 1e-12 {
		t.Errorf("confidence %f should equal score gap", got.Confidence)
	}
	if got.ModelUsed != "heuristic" {
		t.Errorf("model = %s, want heuristic", got.ModelUsed)
	}
}

func TestJudge_ConfidentSupportBiasAmplifies(t *testing.T) {
	neutral := NewJudge(fakeClassifier{classification: Classification{Confidence: 0.5, Bias: "support"}}, nil)
	biased := NewJudge(fakeClassifier{classification: Classification{Confidence: 0.9, Bias: "support"}}, nil)

	pool := evidencePool("plain factual text one", "plain factual text two")

	base := neutral.Judge(context.Background(), pool)
	amplified := biased.Judge(context.Background(), pool)

	if amplified.SupportScore <= base.SupportScore {
		t.Errorf("confident support bias should raise support score: %f vs %f",
			amplified.SupportScore, base.SupportScore)
	}
	if amplified.OpposeScore >= base.OpposeScore {
		t.Errorf("confident support bias should lower oppose score: %f vs %f",
			amplified.OpposeScore, base.OpposeScore)
	}
	if amplified.ModelUsed != "fake" {
		t.Errorf("model = %s, want fake", amplified.ModelUsed)
	}
}

func TestJudge_ClassifierErrorFallsBackToHeuristic(t *testing.T) {
	j := NewJudge(fakeClassifier{err: errors.New("down")}, nil)

	got := j.Judge(context.Background(), evidencePool("some factual text here"))

	if got.ModelUsed != "heuristic" {
		t.Errorf("model = %s, want heuristic after classifier error", got.ModelUsed)
	}
}

func TestAssessCoherence_EncoderPath(t *testing.T) {
	aligned := fakeEncoder{vectors: [][]float32{{1, 0}, {1, 0}}}
	opposed := fakeEncoder{vectors: [][]float32{{1, 0}, {-1, 0}}}

	jAligned := NewJudge(nil, aligned)
	jOpposed := NewJudge(nil, opposed)

	texts := []string{"first chunk", "second chunk"}

	high := jAligned.assessCoherence(context.Background(), texts)
	low := jOpposed.assessCoherence(context.Background(), texts)

	if math.Abs(high-1.0) > 1e-6 {
		t.Errorf("identical vectors coherence = %f, want 1.0", high)
	}
	if math.Abs(low-0.0) > 1e-6 {
		t.Errorf("opposite vectors coherence = %f, want 0.0", low)
	}
}

func TestAssessCoherence_SingleTextDefault(t *testing.T) {
	j := NewJudge(nil, nil)
	if got := j.assessCoherence(context.Background(), []string{"only one"}); got != 0.7 {
		t.Errorf("coherence = %f, want default 0.7", got)
	}
}

func TestAssessCoherence_EncoderErrorFallsBackToOverlap(t *testing.T) {
	j := NewJudge(nil, fakeEncoder{err: errors.New("down")})

	// Both texts share the same first words.
	texts := []string{
		"climate policy drives outcomes",
		"climate policy drives change",
	}
	got := j.assessCoherence(context.Background(), texts)

	// Three shared leading words out of the five-word normalizer.
	if math.Abs(got-0.6) > 1e-12 {
		t.Errorf("fallback coherence = %f, want 0.6", got)
	}
}

func TestClassifierClient_Classify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/classify" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"confidence": 0.8, "bias": "oppose"}`))
	}))
	defer server.Close()

	client := NewClassifierClient(ClassifierConfig{BaseURL: server.URL})

	got, err := client.Classify(context.Background(), []string{"text"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Confidence != 0.8 || got.Bias != "oppose" {
		t.Errorf("classification = %+v", got)
	}
}

func TestClassifierClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClassifierClient(ClassifierConfig{BaseURL: server.URL})

	if _, err := client.Classify(context.Background(), []string{"text"}); err == nil {
		t.Error("expected error for 500 response")
	}
}
