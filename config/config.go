package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the complete application configuration
type Config struct {
	Server        ServerConfig
	Providers     ProvidersConfig
	Retry         RetryConfig
	Observability ObservabilityConfig
	Environment   string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// ProvidersConfig holds text-generation provider configurations.
// API keys are not stored here; adapters read them through a
// CredentialSource at call time so every request sees fresh credentials.
type ProvidersConfig struct {
	Gemini      GeminiConfig
	OpenAI      OpenAIConfig
	Anthropic   AnthropicConfig
	HuggingFace HuggingFaceConfig
}

// GeminiConfig holds Google Gemini provider configuration
type GeminiConfig struct {
	Model   string
	Timeout time.Duration
}

// OpenAIConfig holds OpenAI provider configuration
type OpenAIConfig struct {
	Model   string
	BaseURL string
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic provider configuration
type AnthropicConfig struct {
	Model   string
	BaseURL string
	Timeout time.Duration
}

// HuggingFaceConfig holds Hugging Face inference API configuration
type HuggingFaceConfig struct {
	Model   string
	BaseURL string
	Timeout time.Duration
}

// RetryConfig holds the bounded retry wrapper configuration
type RetryConfig struct {
	MaxAttempts int
	Delay       time.Duration
}

// ObservabilityConfig holds logging configuration
type ObservabilityConfig struct {
	LogLevel  string
	LogFormat string // json or console
}

// New creates a new Config instance by loading environment variables
func New() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load(".env")

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Providers: ProvidersConfig{
			Gemini: GeminiConfig{
				Model:   getEnv("GEMINI_MODEL", "gemini-1.5-pro"),
				Timeout: getEnvAsDuration("GEMINI_TIMEOUT", 30*time.Second),
			},
			OpenAI: OpenAIConfig{
				Model:   getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
				BaseURL: getEnv("OPENAI_BASE_URL", ""),
				Timeout: getEnvAsDuration("OPENAI_TIMEOUT", 30*time.Second),
			},
			Anthropic: AnthropicConfig{
				Model:   getEnv("ANTHROPIC_MODEL", "claude-3-haiku-20240307"),
				BaseURL: getEnv("ANTHROPIC_BASE_URL", ""),
				Timeout: getEnvAsDuration("ANTHROPIC_TIMEOUT", 30*time.Second),
			},
			HuggingFace: HuggingFaceConfig{
				Model:   getEnv("HUGGINGFACE_MODEL", "facebook/bart-large-cnn"),
				BaseURL: getEnv("HUGGINGFACE_BASE_URL", "https://api-inference.huggingface.co"),
				Timeout: getEnvAsDuration("HUGGINGFACE_TIMEOUT", 30*time.Second),
			},
		},
		Retry: RetryConfig{
			MaxAttempts: getEnvAsInt("RETRY_MAX_ATTEMPTS", 3),
			Delay:       getEnvAsDuration("RETRY_DELAY", 60*time.Second),
		},
		Observability: ObservabilityConfig{
			LogLevel:  getEnv("LOG_LEVEL", "info"),
			LogFormat: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if all required configuration fields are set
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry max attempts must be at least 1")
	}
	if c.Observability.LogLevel == "" {
		return fmt.Errorf("log level is required")
	}
	return nil
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development" || c.Environment == "dev"
}

// Address returns the HTTP server address
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
