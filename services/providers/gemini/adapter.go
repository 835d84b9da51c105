package gemini

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/upb/meeting-summarizer/config"
	"github.com/upb/meeting-summarizer/services/providers"
)

const prompt = `You are a helpful meeting assistant. Analyze the following meeting transcript and return:

1. A concise summary of what was discussed.
2. A list of key decisions made.
3. A list of tasks or action items (with who is responsible and deadline if mentioned).

Transcript:
%s

Respond with clearly separated sections:
- Summary
- Decisions
- Action Items

Format the response nicely with clear headings and bullet points.`

// exhaustedMessage is returned when every credential in the set has failed.
// It deliberately contains "quota" so the orchestrator's classifier treats
// this provider as exhausted and advances to the next one.
const exhaustedMessage = "All Google API keys have quota exceeded. Trying other providers..."

// generateFunc performs one generation call with one API key. Tests replace it.
type generateFunc func(ctx context.Context, apiKey, model, prompt string) (string, error)

// Adapter implements the Provider interface for Google Gemini.
// It holds a credential set rather than a single key and rotates to the next
// key whenever a call fails, so a quota-limited key does not take the whole
// provider out of rotation.
type Adapter struct {
	config   providers.ProviderConfig
	logger   *zap.Logger
	generate generateFunc
}

// NewAdapter creates a new Gemini adapter
func NewAdapter(cfg providers.ProviderConfig, logger *zap.Logger) *Adapter {
	if cfg.Timeout == 0 {
		cfg.Timeout = providers.DefaultTimeout
	}

	return &Adapter{
		config:   cfg,
		logger:   logger,
		generate: generateContent,
	}
}

// Name returns the provider name
func (a *Adapter) Name() string {
	return "gemini"
}

// Summarize tries each configured API key in order. A failing key (quota or
// otherwise) advances to the next one; the first successful response wins.
// With every key exhausted it returns the quota-flagged diagnostic string.
func (a *Adapter) Summarize(ctx context.Context, transcript string) (string, error) {
	keys := config.CredentialSet(a.config.Credentials, config.GeminiKeyName)
	if len(keys) == 0 {
		return "", providers.ErrNotConfigured
	}

	for i, key := range keys {
		text, err := a.tryKey(ctx, key, transcript)
		if err != nil {
			if providers.IsQuotaCondition(err.Error()) {
				a.logger.Warn("gemini API key quota exceeded, trying next",
					zap.Int("key_index", i+1),
					zap.Int("key_count", len(keys)))
			} else {
				a.logger.Warn("gemini API key failed, trying next",
					zap.Int("key_index", i+1),
					zap.Error(err))
			}
			continue
		}

		if text != "" {
			return text, nil
		}
	}

	return exhaustedMessage, nil
}

func (a *Adapter) tryKey(ctx context.Context, key, transcript string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, a.config.Timeout)
	defer cancel()

	return a.generate(callCtx, key, a.config.Model, fmt.Sprintf(prompt, transcript))
}

// generateContent performs one real generation call against the Gemini API.
func generateContent(ctx context.Context, apiKey, model, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from Gemini")
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}

	return text.String(), nil
}

var _ providers.Provider = (*Adapter)(nil)
