package config

import "time"

// Provider names accepted in llm.provider.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port           int    `mapstructure:"port"            validate:"required,gt=0,lt=65536"`
	LogLevel       string `mapstructure:"log_level"       validate:"required,oneof=debug info warn error"`
	MetricsEnabled bool   `mapstructure:"metrics_enabled"`
	MaxBodyBytes   int64  `mapstructure:"max_body_bytes"  validate:"gt=0"`
}

// LLMConfig contains all settings of the language model integration.
//
// API keys are optional at load time. A missing key is reported when a
// request needs it, not when the server starts.
type LLMConfig struct {
	Provider       string `mapstructure:"provider"        validate:"required,oneof=gemini openai"`
	ModelName      string `mapstructure:"model_name"      validate:"required"`
	GeminiAPIKey   string `mapstructure:"gemini_api_key"`
	OpenAIAPIKey   string `mapstructure:"openai_api_key"`
	OpenAIBaseURL  string `mapstructure:"openai_base_url" validate:"omitempty,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=0"`
}

// Timeout returns the per-call deadline, or zero when calls are unbounded.
func (c LLMConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// APIKey returns the credential of the selected provider.
func (c LLMConfig) APIKey() string {
	if c.Provider == ProviderOpenAI {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}
