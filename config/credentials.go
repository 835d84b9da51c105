package config

import (
	"fmt"
	"os"
)

// Credential environment variable names for each provider.
const (
	GeminiKeyName      = "GOOGLE_API_KEY"
	OpenAIKeyName      = "OPENAI_API_KEY"
	AnthropicKeyName   = "ANTHROPIC_API_KEY"
	HuggingFaceKeyName = "HUGGINGFACE_API_KEY"
)

// CredentialSource resolves secret values by name. Adapters read credentials
// through this interface on every call, so tests can supply deterministic
// credential sets without mutating the process environment.
type CredentialSource interface {
	// Lookup returns the credential value and whether it is set.
	Lookup(name string) (string, bool)
}

// EnvSource reads credentials from the process environment.
type EnvSource struct{}

// Lookup returns the environment variable value. An empty value counts as unset.
func (EnvSource) Lookup(name string) (string, bool) {
	value, ok := os.LookupEnv(name)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// StaticSource is a fixed map of credentials, used in tests.
type StaticSource map[string]string

// Lookup returns the mapped value and whether it is present and non-empty.
func (s StaticSource) Lookup(name string) (string, bool) {
	value, ok := s[name]
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// CredentialSet enumerates all credentials for a base name: the base itself,
// then numeric suffixes (NAME_1, NAME_2, ...) scanned contiguously. The scan
// stops at the first missing suffix; a later index past a gap is never reached.
func CredentialSet(src CredentialSource, base string) []string {
	var keys []string

	if key, ok := src.Lookup(base); ok {
		keys = append(keys, key)
	}

	for i := 1; ; i++ {
		key, ok := src.Lookup(fmt.Sprintf("%s_%d", base, i))
		if !ok {
			break
		}
		keys = append(keys, key)
	}

	return keys
}
