package models

// ArgumentInput is one side's submission to the synthesis pipeline.
// Citations is accepted for compatibility with older clients but is
// informational only; citation usage is re-derived from Reasoning.
type ArgumentInput struct {
	Reasoning string   `json:"reasoning"`
	Citations []string `json:"citations,omitempty"`
}

// EvidenceChunk is a retrieved passage of supporting material.
type EvidenceChunk struct {
	ID        string  `json:"id"`
	Text      string  `json:"text"`
	Relevance float64 `json:"relevance"`
}

// SynthesisRequest is the input to the pipeline.
type SynthesisRequest struct {
	Support  ArgumentInput   `json:"support"`
	Oppose   ArgumentInput   `json:"oppose"`
	Evidence []EvidenceChunk `json:"evidence"`
}

// SideScores summarizes one side's argument analysis.
type SideScores struct {
	Strength    float64 `json:"strength"`
	Coverage    float64 `json:"coverage"`
	Consistency float64 `json:"consistency"`
}

// DimensionScores breaks evidence quality into named dimensions.
type DimensionScores struct {
	FactualGrounding    float64 `json:"factual_grounding"`
	LogicalCoherence    float64 `json:"logical_coherence"`
	EvidenceIntegration float64 `json:"evidence_integration"`
	ArgumentStrength    float64 `json:"argument_strength"`
	Objectivity         float64 `json:"objectivity"`
}

// EvidenceScores holds the aggregate evidence quality and its breakdown.
type EvidenceScores struct {
	QualityScore    float64         `json:"quality_score"`
	DimensionScores DimensionScores `json:"dimension_scores"`
}

// StrongContradiction is a specific contradictory statement pair.
type StrongContradiction struct {
	SupportStatement string  `json:"support_statement"`
	OpposeStatement  string  `json:"oppose_statement"`
	Confidence       float64 `json:"confidence"`
}

// ContradictionScores reports how directly the two arguments oppose
// each other. Entailment and neutral scores are only populated by the
// NLI model path.
type ContradictionScores struct {
	ContradictionScore   float64               `json:"contradiction_score"`
	SimilarityScore      float64               `json:"similarity_score"`
	EntailmentScore      float64               `json:"entailment_score,omitempty"`
	NeutralScore         float64               `json:"neutral_score,omitempty"`
	IsContradictory      bool                  `json:"is_contradictory"`
	StrongContradictions []StrongContradiction `json:"strong_contradictions"`
	ModelUsed            string                `json:"model_used,omitempty"`
}

// Scores is the full score breakdown attached to a synthesis response.
type Scores struct {
	Support        SideScores          `json:"support"`
	Oppose         SideScores          `json:"oppose"`
	Evidence       EvidenceScores      `json:"evidence"`
	Contradictions ContradictionScores `json:"contradictions"`
}

// KeyEvidence is one evidence chunk selected for display.
type KeyEvidence struct {
	ChunkID       string   `json:"chunkId"`
	Text          string   `json:"text"`
	Weight        float64  `json:"weight"`
	UsedBy        []string `json:"usedBy"`
	VerdictImpact float64  `json:"verdictImpact"`
}

// ProcessingMetadata records which collaborators produced the result.
type ProcessingMetadata struct {
	RequestID     string   `json:"request_id"`
	Collaborators []string `json:"collaborators"`
	FallbackUsed  bool     `json:"fallback_used,omitempty"`
}

// SynthesisResponse is the terminal output of one pipeline invocation.
type SynthesisResponse struct {
	Success            bool               `json:"success"`
	Error              string             `json:"error,omitempty"`
	FinalVerdict       string             `json:"final_verdict"`
	Confidence         float64            `json:"confidence"`
	Reasoning          string             `json:"reasoning"`
	Scores             Scores             `json:"scores"`
	KeyEvidence        []KeyEvidence      `json:"key_evidence"`
	ProcessingMetadata ProcessingMetadata `json:"processing_metadata"`
}
