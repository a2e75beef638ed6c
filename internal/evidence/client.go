package evidence

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ClassifierClient calls a hosted evidence classifier over HTTP.
type ClassifierClient struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// ClassifierConfig holds classifier client configuration.
type ClassifierConfig struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// DefaultClassifierConfig returns default configuration.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		Model:   "deberta-v3-small",
		Timeout: 30 * time.Second,
	}
}

// NewClassifierClient creates a classifier client for the given
// endpoint.
func NewClassifierClient(config ClassifierConfig) *ClassifierClient {
	if config.Model == "" {
		config.Model = DefaultClassifierConfig().Model
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultClassifierConfig().Timeout
	}

	return &ClassifierClient{
		baseURL: config.BaseURL,
		model:   config.Model,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// Name identifies the backing model in processing metadata.
func (c *ClassifierClient) Name() string {
	return c.model
}

type classifyRequest struct {
	Model string   `json:"model"`
	Texts []string `json:"texts"`
}

// Classify sends the evidence texts for directional classification.
func (c *ClassifierClient) Classify(ctx context.Context, texts []string) (Classification, error) {
	reqBody := classifyRequest{
		Model: c.model,
		Texts: texts,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return Classification{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/classify", bytes.NewReader(jsonBody))
	if err != nil {
		return Classification{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Classification{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Classification{}, fmt.Errorf("classifier error: status %d", resp.StatusCode)
	}

	var classification Classification
	if err := json.NewDecoder(resp.Body).Decode(&classification); err != nil {
		return Classification{}, fmt.Errorf("decode response: %w", err)
	}

	return classification, nil
}
