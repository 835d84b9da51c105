package huggingface

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/upb/meeting-summarizer/config"
	"github.com/upb/meeting-summarizer/services/providers"
)

func newTestAdapter(baseURL string, src config.StaticSource) *Adapter {
	return NewAdapter(providers.ProviderConfig{
		Credentials: src,
		Model:       "facebook/bart-large-cnn",
		BaseURL:     baseURL,
	})
}

func TestNewAdapterDefaults(t *testing.T) {
	a := NewAdapter(providers.ProviderConfig{Credentials: config.StaticSource{}})

	if a.config.BaseURL != defaultBaseURL {
		t.Errorf("BaseURL = %s, want %s", a.config.BaseURL, defaultBaseURL)
	}
	if a.config.Timeout != providers.DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", a.config.Timeout, providers.DefaultTimeout)
	}
	if a.Name() != "huggingface" {
		t.Errorf("Name() = %s, want huggingface", a.Name())
	}
}

func TestSummarizeNotConfigured(t *testing.T) {
	a := newTestAdapter("http://localhost:1", config.StaticSource{})

	_, err := a.Summarize(context.Background(), "the transcript")

	if !errors.Is(err, providers.ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{
			name:   "summary from first result",
			status: http.StatusOK,
			body:   `[{"summary_text": "The team agreed on X."}]`,
			want:   "The team agreed on X.",
		},
		{
			name:   "non-list response stringified",
			status: http.StatusOK,
			body:   `{"estimated_time": 20.0}`,
			want:   `{"estimated_time": 20.0}`,
		},
		{
			name:   "empty list stringified",
			status: http.StatusOK,
			body:   `[]`,
			want:   `[]`,
		},
		{
			name:   "rate limited",
			status: http.StatusTooManyRequests,
			body:   `{"error": "Rate limit reached"}`,
			want:   "Hugging Face rate limit exceeded",
		},
		{
			name:   "model loading",
			status: http.StatusServiceUnavailable,
			body:   `{"error": "Model is currently loading"}`,
			want:   "Hugging Face error: 503",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if !strings.HasSuffix(r.URL.Path, "/models/facebook/bart-large-cnn") {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				if r.Header.Get("Authorization") != "Bearer hf-test" {
					t.Errorf("missing bearer token")
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			a := newTestAdapter(ts.URL, config.StaticSource{"HUGGINGFACE_API_KEY": "hf-test"})

			result, err := a.Summarize(context.Background(), "the transcript")

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.want {
				t.Errorf("result = %q, want %q", result, tt.want)
			}
		})
	}
}

func TestSummarizeTransportFault(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	a := newTestAdapter(ts.URL, config.StaticSource{"HUGGINGFACE_API_KEY": "hf-test"})

	if _, err := a.Summarize(context.Background(), "the transcript"); err == nil {
		t.Fatal("expected transport error, got none")
	}
}
