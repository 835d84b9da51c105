package handlers

import (
	"net/http"

	"github.com/upb/meeting-summarizer/config"
	"github.com/upb/meeting-summarizer/utils"
)

// HealthResponse is the liveness payload
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadinessResponse reports which providers have credentials configured.
// An empty list is still ready: the local fallback needs no credential.
type ReadinessResponse struct {
	Status              string   `json:"status"`
	ConfiguredProviders []string `json:"configured_providers"`
}

// HealthCheck handles GET /healthz
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	_ = utils.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// ReadinessCheck returns a handler for GET /readyz that reports provider
// credential availability from the given source.
func ReadinessCheck(creds config.CredentialSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		configured := []string{}

		if len(config.CredentialSet(creds, config.GeminiKeyName)) > 0 {
			configured = append(configured, "gemini")
		}
		if _, ok := creds.Lookup(config.OpenAIKeyName); ok {
			configured = append(configured, "openai")
		}
		if _, ok := creds.Lookup(config.AnthropicKeyName); ok {
			configured = append(configured, "anthropic")
		}
		if _, ok := creds.Lookup(config.HuggingFaceKeyName); ok {
			configured = append(configured, "huggingface")
		}

		_ = utils.WriteJSON(w, http.StatusOK, ReadinessResponse{
			Status:              "ready",
			ConfiguredProviders: configured,
		})
	}
}
