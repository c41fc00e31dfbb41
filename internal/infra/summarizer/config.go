package summarizer

import (
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
)

// Provider identifiers.
const (
	ProviderGemini = "gemini"
	ProviderClaude = "claude"
	ProviderOpenAI = "openai"
)

// GeminiOpenAIBaseURL is Gemini's OpenAI-compatible Chat Completions endpoint.
const GeminiOpenAIBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"

// Target summary length in non-blank lines. Used for metrics only; model
// output is never rejected or trimmed for missing it.
const (
	MinSummaryLines = 5
	MaxSummaryLines = 6
)

// Config configures a summarization provider.
type Config struct {
	// Provider is one of gemini, claude, openai.
	Provider string

	APIKey string

	// Model defaults per provider when empty (see DefaultModel).
	Model string

	// BaseURL overrides the provider endpoint. Empty means the provider default.
	BaseURL string

	// MaxTokens caps the response length.
	// Default: 2048
	MaxTokens int

	// Timeout bounds a single model call.
	// Default: 60s
	Timeout time.Duration
}

// DefaultModel returns the model used when Config.Model is empty.
func DefaultModel(provider string) string {
	switch provider {
	case ProviderGemini:
		return "gemini-2.5-flash"
	case ProviderClaude:
		return string(anthropic.ModelClaudeSonnet4_5_20250929)
	case ProviderOpenAI:
		return "gpt-4o-mini"
	default:
		return ""
	}
}

// withDefaults fills unset fields.
func (c Config) withDefaults() Config {
	if c.Model == "" {
		c.Model = DefaultModel(c.Provider)
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = 2048
	}
	if c.Timeout <= 0 {
		c.Timeout = 60 * time.Second
	}
	return c
}

// Validate checks the configuration after defaults are applied.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderGemini, ProviderClaude, ProviderOpenAI:
	default:
		return fmt.Errorf("unknown summarizer provider %q", c.Provider)
	}

	if c.APIKey == "" {
		return fmt.Errorf("api key is required for provider %s", c.Provider)
	}

	if c.Model == "" {
		return fmt.Errorf("model cannot be empty")
	}

	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", c.MaxTokens)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}

	return nil
}
