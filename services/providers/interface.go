package providers

import (
	"context"
	"errors"
	"time"

	"github.com/upb/meeting-summarizer/config"
)

// ErrNotConfigured indicates the provider's required credential is not set.
// The orchestrator treats it as "skip this provider", not as a failure.
var ErrNotConfigured = errors.New("provider not configured")

// Provider represents a unified text-generation provider interface.
//
// Summarize returns either the provider's answer text or a short diagnostic
// string embedding the backend's error category (the two are distinguished
// downstream by IsQuotaCondition; see the classifier notes there). It returns
// ErrNotConfigured when no credential is available, and a non-nil error for
// transport faults or unexpected response shapes.
type Provider interface {
	// Name returns the provider name (e.g., "gemini", "openai", "anthropic")
	Name() string

	// Summarize sends the transcript to the backend and returns the analysis
	Summarize(ctx context.Context, transcript string) (string, error)
}

// ProviderConfig holds common configuration for hosted provider adapters
type ProviderConfig struct {
	// Credentials resolves API keys at call time, so each request sees
	// whatever is currently in the environment
	Credentials config.CredentialSource

	// Model identifier sent to the backend
	Model string

	// BaseURL for the API (optional override, used in tests)
	BaseURL string

	// Timeout bounds each outbound request
	Timeout time.Duration
}

// DefaultTimeout is the request bound used when ProviderConfig.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// The prompt sent to chat-style backends, asking for the three sections the
// formatted analysis must contain.
const (
	SystemPrompt = "You are a helpful meeting assistant. Analyze meeting transcripts and provide summaries, decisions, and action items."

	UserPromptTemplate = "Analyze this meeting transcript:\n\n%s\n\nProvide:\n1. Summary\n2. Key Decisions\n3. Action Items"
)
