package contradiction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// NLIClient calls a hosted natural-language-inference model that
// scores an argument pair for entailment, neutrality, and
// contradiction.
type NLIClient struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// NLIConfig holds NLI client configuration.
type NLIConfig struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// DefaultNLIConfig returns default configuration.
func DefaultNLIConfig() NLIConfig {
	return NLIConfig{
		Model:   "roberta-large-mnli",
		Timeout: 30 * time.Second,
	}
}

// NewNLIClient creates an NLI client for the given endpoint.
func NewNLIClient(config NLIConfig) *NLIClient {
	if config.Model == "" {
		config.Model = DefaultNLIConfig().Model
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultNLIConfig().Timeout
	}

	return &NLIClient{
		baseURL: config.BaseURL,
		model:   config.Model,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// Name identifies the backing model in processing metadata.
func (c *NLIClient) Name() string {
	return c.model
}

// NLIResult is the model's raw score breakdown.
type NLIResult struct {
	ContradictionScore float64 `json:"contradiction_score"`
	SimilarityScore    float64 `json:"similarity_score"`
	EntailmentScore    float64 `json:"entailment_score"`
	NeutralScore       float64 `json:"neutral_score"`
}

type nliRequest struct {
	Model      string `json:"model"`
	Premise    string `json:"premise"`
	Hypothesis string `json:"hypothesis"`
}

// inferenceSampleLimit bounds the text sent to the model; the leading
// portion of each argument carries its thesis.
const inferenceSampleLimit = 300

// Detect scores the oppose text against the support text.
func (c *NLIClient) Detect(ctx context.Context, supportText, opposeText string) (NLIResult, error) {
	reqBody := nliRequest{
		Model:      c.model,
		Premise:    truncate(supportText, inferenceSampleLimit),
		Hypothesis: truncate(opposeText, inferenceSampleLimit),
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return NLIResult{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/nli", bytes.NewReader(jsonBody))
	if err != nil {
		return NLIResult{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return NLIResult{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return NLIResult{}, fmt.Errorf("NLI error: status %d", resp.StatusCode)
	}

	var result NLIResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return NLIResult{}, fmt.Errorf("decode response: %w", err)
	}

	return result, nil
}
