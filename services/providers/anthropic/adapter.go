package anthropic

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/upb/meeting-summarizer/config"
	"github.com/upb/meeting-summarizer/services/providers"
)

// Adapter implements the Provider interface for the Anthropic messages API
type Adapter struct {
	config providers.ProviderConfig
}

// NewAdapter creates a new Anthropic adapter
func NewAdapter(cfg providers.ProviderConfig) *Adapter {
	if cfg.Timeout == 0 {
		cfg.Timeout = providers.DefaultTimeout
	}

	return &Adapter{config: cfg}
}

// Name returns the provider name
func (a *Adapter) Name() string {
	return "anthropic"
}

// Summarize performs one messages request. The error taxonomy matches the
// openai adapter: 429 and other API statuses become diagnostic strings,
// transport faults become errors.
func (a *Adapter) Summarize(ctx context.Context, transcript string) (string, error) {
	apiKey, ok := a.config.Credentials.Lookup(config.AnthropicKeyName)
	if !ok {
		return "", providers.ErrNotConfigured
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(&http.Client{Timeout: a.config.Timeout}),
		option.WithMaxRetries(0),
	}
	if a.config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(a.config.BaseURL))
	}
	client := anthropic.NewClient(opts...)

	msg, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.config.Model),
		MaxTokens: 1000,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(fmt.Sprintf(providers.UserPromptTemplate, transcript)),
			),
		},
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			if apiErr.StatusCode == http.StatusTooManyRequests {
				return "Anthropic rate limit exceeded", nil
			}
			return fmt.Sprintf("Anthropic error: %d", apiErr.StatusCode), nil
		}
		return "", fmt.Errorf("anthropic request failed: %w", err)
	}

	if len(msg.Content) == 0 {
		return "", fmt.Errorf("anthropic response contained no content blocks")
	}

	return msg.Content[0].Text, nil
}

var _ providers.Provider = (*Adapter)(nil)
