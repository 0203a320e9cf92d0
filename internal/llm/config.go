// Package llm wraps the text-generation backends behind a small client
// abstraction with model, token-budget, and temperature configuration.
package llm

import (
	"os"
	"strconv"
)

// Default model configuration, overridable via environment.
const (
	DefaultClaudeModel     = "claude-sonnet-4-20250514"
	DefaultGPTModel        = "gpt-5"
	DefaultClaudeMaxTokens = 8192
	DefaultGPTMaxTokens    = 128000
	DefaultTemperature     = 0.5
)

// Provider identifies a generation backend.
type Provider string

// Supported providers. Anthropic is the primary backend; OpenAI is held in
// reserve as the fallback.
const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
)

// Config holds credentials and model settings for both backends.
type Config struct {
	AnthropicAPIKey string
	OpenAIAPIKey    string

	ClaudeModel     string
	GPTModel        string
	ClaudeMaxTokens int
	GPTMaxTokens    int
	Temperature     float64
}

// ConfigFromEnv reads the backend configuration from the environment,
// falling back to defaults for everything but the API keys.
func ConfigFromEnv() Config {
	return Config{
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		ClaudeModel:     envString("STORYCRAFTER_CLAUDE_MODEL", DefaultClaudeModel),
		GPTModel:        envString("STORYCRAFTER_GPT_MODEL", DefaultGPTModel),
		ClaudeMaxTokens: envInt("STORYCRAFTER_CLAUDE_MAX_TOKENS", DefaultClaudeMaxTokens),
		GPTMaxTokens:    envInt("STORYCRAFTER_GPT_MAX_TOKENS", DefaultGPTMaxTokens),
		Temperature:     envFloat("STORYCRAFTER_TEMPERATURE", DefaultTemperature),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
