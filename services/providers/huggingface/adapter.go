package huggingface

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/upb/meeting-summarizer/config"
	"github.com/upb/meeting-summarizer/services/providers"
)

const defaultBaseURL = "https://api-inference.huggingface.co"

// Adapter implements the Provider interface for the Hugging Face inference
// API. Unlike the chat providers it sends summarization-style parameters and
// receives a list of result objects.
type Adapter struct {
	config     providers.ProviderConfig
	httpClient *http.Client
}

// NewAdapter creates a new Hugging Face adapter
func NewAdapter(cfg providers.ProviderConfig) *Adapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = providers.DefaultTimeout
	}

	return &Adapter{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Name returns the provider name
func (a *Adapter) Name() string {
	return "huggingface"
}

// summarizationRequest is the inference API payload shape
type summarizationRequest struct {
	Inputs     string                  `json:"inputs"`
	Parameters summarizationParameters `json:"parameters"`
}

type summarizationParameters struct {
	MaxLength   int     `json:"max_length"`
	Temperature float64 `json:"temperature"`
}

// summarizationResult is one element of the inference API response list
type summarizationResult struct {
	SummaryText string `json:"summary_text"`
}

// Summarize performs one summarization request against the configured model
func (a *Adapter) Summarize(ctx context.Context, transcript string) (string, error) {
	apiKey, ok := a.config.Credentials.Lookup(config.HuggingFaceKeyName)
	if !ok {
		return "", providers.ErrNotConfigured
	}

	payload := summarizationRequest{
		Inputs: fmt.Sprintf("Summarize this meeting transcript:\n\n%s\n\nProvide summary, decisions, and action items.", transcript),
		Parameters: summarizationParameters{
			MaxLength:   500,
			Temperature: 0.7,
		},
	}

	reqBody, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := a.config.BaseURL + "/models/" + a.config.Model
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(reqBody)))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)

	httpResp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("huggingface request failed: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	switch {
	case httpResp.StatusCode == http.StatusTooManyRequests:
		return "Hugging Face rate limit exceeded", nil
	case httpResp.StatusCode != http.StatusOK:
		return fmt.Sprintf("Hugging Face error: %d", httpResp.StatusCode), nil
	}

	// The API returns a list of results; take the first summary if present,
	// otherwise fall back to the raw body.
	var results []summarizationResult
	if err := json.Unmarshal(respBody, &results); err == nil && len(results) > 0 && results[0].SummaryText != "" {
		return results[0].SummaryText, nil
	}

	return string(respBody), nil
}

var _ providers.Provider = (*Adapter)(nil)
