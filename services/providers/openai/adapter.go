package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"github.com/upb/meeting-summarizer/config"
	"github.com/upb/meeting-summarizer/services/providers"
)

// Adapter implements the Provider interface for the OpenAI chat API
type Adapter struct {
	config providers.ProviderConfig
}

// NewAdapter creates a new OpenAI adapter
func NewAdapter(cfg providers.ProviderConfig) *Adapter {
	if cfg.Timeout == 0 {
		cfg.Timeout = providers.DefaultTimeout
	}

	return &Adapter{config: cfg}
}

// Name returns the provider name
func (a *Adapter) Name() string {
	return "openai"
}

// Summarize performs one chat completion request. A 429 response becomes the
// rate-limit diagnostic string, any other API error becomes a diagnostic
// string carrying the status code, and transport faults are returned as
// errors for the orchestrator to log and skip.
func (a *Adapter) Summarize(ctx context.Context, transcript string) (string, error) {
	apiKey, ok := a.config.Credentials.Lookup(config.OpenAIKeyName)
	if !ok {
		return "", providers.ErrNotConfigured
	}

	clientCfg := openai.DefaultConfig(apiKey)
	if a.config.BaseURL != "" {
		clientCfg.BaseURL = a.config.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{Timeout: a.config.Timeout}
	client := openai.NewClientWithConfig(clientCfg)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: providers.SystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(providers.UserPromptTemplate, transcript),
			},
		},
		MaxTokens:   1000,
		Temperature: 0.7,
	})
	if err != nil {
		var apiErr *openai.APIError
		var reqErr *openai.RequestError
		switch {
		case errors.As(err, &apiErr):
			if apiErr.HTTPStatusCode == http.StatusTooManyRequests {
				return "OpenAI rate limit exceeded", nil
			}
			return fmt.Sprintf("OpenAI error: %d", apiErr.HTTPStatusCode), nil
		case errors.As(err, &reqErr):
			if reqErr.HTTPStatusCode == http.StatusTooManyRequests {
				return "OpenAI rate limit exceeded", nil
			}
			return fmt.Sprintf("OpenAI error: %d", reqErr.HTTPStatusCode), nil
		}
		return "", fmt.Errorf("openai request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai response contained no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

var _ providers.Provider = (*Adapter)(nil)
