// Package explain generates a free-text explanation of a synthesis
// result via hosted chat models, trying a fixed fallback chain.
// Callers must treat failure as expected and fall back to the
// template narration.
package explain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://openrouter.ai/api/v1"
	attemptTimeout = 15 * time.Second
	maxTokens      = 300
	temperature    = 0.7
	summaryLimit   = 500
)

// ErrNoAPIKey indicates the client was built without credentials.
var ErrNoAPIKey = errors.New("no API key configured")

// ErrAllModelsFailed indicates every model in the chain failed.
var ErrAllModelsFailed = errors.New("all explanation models failed")

// Model is one entry in the fallback chain.
type Model struct {
	ID   string
	Name string
}

// DefaultModels returns the fallback chain, tried in order.
func DefaultModels() []Model {
	return []Model{
		{ID: "x-ai/grok-2-1212", Name: "Grok 2"},
		{ID: "meta-llama/llama-3.2-3b-instruct:free", Name: "Llama 3.2 3B"},
		{ID: "google/gemini-2.0-flash-exp:free", Name: "Gemini 2.0 Flash"},
		{ID: "mistralai/mistral-7b-instruct:free", Name: "Mistral 7B"},
		{ID: "qwen/qwen-2-7b-instruct:free", Name: "Qwen 2 7B"},
		{ID: "microsoft/phi-3-mini-128k-instruct:free", Name: "Phi-3 Mini"},
	}
}

// Client calls the OpenRouter chat-completions API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	models     []Model
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithModels replaces the fallback chain.
func WithModels(models []Model) ClientOption {
	return func(c *Client) {
		c.models = models
	}
}

// NewClient creates an explanation client.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		models:     DefaultModels(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Inputs summarizes the verdict for the explanation prompt.
type Inputs struct {
	Verdict            string
	Confidence         float64
	SupportStrength    float64
	OpposeStrength     float64
	EvidenceQuality    float64
	ContradictionScore float64
	SupportSummary     string
	OpposeSummary      string
}

// Explanation is the generated text and the model that produced it.
type Explanation struct {
	Text      string
	ModelUsed string
}

// Explain tries each model in the chain until one answers.
func (c *Client) Explain(ctx context.Context, in Inputs) (Explanation, error) {
	if c.apiKey == "" {
		return Explanation{}, ErrNoAPIKey
	}

	prompt := buildPrompt(in)

	for _, model := range c.models {
		text, err := c.complete(ctx, model.ID, prompt)
		if err != nil {
			log.Printf("explanation model %s failed: %v", model.Name, err)
			if ctx.Err() != nil {
				return Explanation{}, ctx.Err()
			}
			continue
		}
		return Explanation{Text: text, ModelUsed: model.Name}, nil
	}

	return Explanation{}, ErrAllModelsFailed
}

func buildPrompt(in Inputs) string {
	return fmt.Sprintf(`You are an expert AI judge explaining a debate verdict.

DEBATE RESULTS:
- Final Verdict: %s
- Confidence: %d%%

SUPPORT ARGUMENT SUMMARY:
%s

OPPOSE ARGUMENT SUMMARY:
%s

ANALYSIS SCORES:
- Support Strength: %.2f
- Oppose Strength: %.2f
- Evidence Quality: %.2f
- Contradiction Score: %.2f

YOUR TASK:
Write a clear, concise explanation (3-4 sentences) of why this verdict was reached. Focus on:
1. What made the winning side stronger
2. Key evidence factors
3. Why the confidence level is what it is

Keep it professional but accessible. No bullet points. Just clear prose.`,
		strings.ToUpper(in.Verdict),
		int(in.Confidence*100),
		truncate(in.SupportSummary, summaryLimit),
		truncate(in.OpposeSummary, summaryLimit),
		in.SupportStrength,
		in.OpposeStrength,
		in.EvidenceQuality,
		in.ContradictionScore,
	)
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) complete(ctx context.Context, modelID, prompt string) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
	defer cancel()

	reqBody := chatRequest{
		Model:       modelID,
		Messages:    []message{{Role: "user", Content: prompt}},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(attemptCtx, "POST", c.baseURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error: status %d", resp.StatusCode)
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("empty response")
	}

	return strings.TrimSpace(cr.Choices[0].Message.Content), nil
}

func truncate(s string, limit int) string {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
