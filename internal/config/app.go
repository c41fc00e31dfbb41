// Package config loads process configuration for the news proxy from the
// environment (optionally seeded from a .env file) and the news catalog YAML.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Summarizer provider identifiers.
const (
	ProviderGemini = "gemini"
	ProviderClaude = "claude"
	ProviderOpenAI = "openai"
)

// Scrape strategies.
const (
	StrategyParagraph   = "paragraph"
	StrategyReadability = "readability"
)

// ErrMissingAPIKey is returned when a required upstream API key is not configured.
var ErrMissingAPIKey = errors.New("required API key is not set")

// AppConfig holds everything the API server needs at startup.
type AppConfig struct {
	// Port is the listening port. Default: 8000
	Port int

	// Version is reported by /health. Default: "dev"
	Version string

	// CatalogFile is an optional YAML file overriding the built-in news catalog.
	CatalogFile string

	NewsAPI    NewsAPIConfig
	Summarizer SummarizerConfig
	Scraper    ScraperConfig
	CORS       CORSConfig
}

// NewsAPIConfig configures the news provider client.
type NewsAPIConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// SummarizerConfig configures the generative model client.
type SummarizerConfig struct {
	// Provider is one of gemini, claude, openai. Default: gemini
	Provider string
	// APIKey is read from the provider specific variable
	// (GEMINI_API_KEY, ANTHROPIC_API_KEY, OPENAI_API_KEY).
	APIKey string
	// Model overrides the provider default model when set.
	Model string
	// BaseURL overrides the provider endpoint when set.
	BaseURL   string
	MaxTokens int
	Timeout   time.Duration
}

// ScraperConfig configures article page fetching and text extraction.
type ScraperConfig struct {
	Strategy       string
	Timeout        time.Duration
	MaxBodySize    int64
	MaxRedirects   int
	DenyPrivateIPs bool
}

// CORSConfig configures cross-origin access for the browser front end.
type CORSConfig struct {
	// AllowedOrigins may contain "*" to allow any origin.
	AllowedOrigins []string
}

// apiKeyEnv maps a summarizer provider to the variable holding its key.
var apiKeyEnv = map[string]string{
	ProviderGemini: "GEMINI_API_KEY",
	ProviderClaude: "ANTHROPIC_API_KEY",
	ProviderOpenAI: "OPENAI_API_KEY",
}

// LoadAppConfig loads configuration from environment variables and validates it.
// Missing API keys are reported as errors wrapping ErrMissingAPIKey so the
// caller can terminate before serving traffic.
func LoadAppConfig() (*AppConfig, error) {
	provider := strings.ToLower(getEnvOrDefault("SUMMARIZER_PROVIDER", ProviderGemini))

	cfg := &AppConfig{
		Port:        getEnvInt("PORT", 8000),
		Version:     getEnvOrDefault("VERSION", "dev"),
		CatalogFile: getEnvOrDefault("NEWS_CATALOG_FILE", ""),
		NewsAPI: NewsAPIConfig{
			APIKey:  getEnvOrDefault("NEWSAPI_API_KEY", ""),
			BaseURL: strings.TrimRight(getEnvOrDefault("NEWSAPI_BASE_URL", "https://newsapi.org/v2"), "/"),
			Timeout: getEnvDuration("NEWSAPI_TIMEOUT", 15*time.Second),
		},
		Summarizer: SummarizerConfig{
			Provider:  provider,
			APIKey:    getEnvOrDefault(apiKeyEnv[provider], ""),
			Model:     getEnvOrDefault("SUMMARIZER_MODEL", ""),
			BaseURL:   getEnvOrDefault("SUMMARIZER_BASE_URL", ""),
			MaxTokens: getEnvInt("SUMMARIZER_MAX_TOKENS", 2048),
			Timeout:   getEnvDuration("SUMMARIZER_TIMEOUT", 60*time.Second),
		},
		Scraper: ScraperConfig{
			Strategy:       strings.ToLower(getEnvOrDefault("SCRAPER_STRATEGY", StrategyParagraph)),
			Timeout:        getEnvDuration("SCRAPER_TIMEOUT", 15*time.Second),
			MaxBodySize:    getEnvInt64("SCRAPER_MAX_BODY_SIZE", 10*1024*1024),
			MaxRedirects:   getEnvInt("SCRAPER_MAX_REDIRECTS", 5),
			DenyPrivateIPs: getEnvBool("SCRAPER_DENY_PRIVATE_IPS", true),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configuration correctness.
func (c *AppConfig) Validate() error {
	if c.NewsAPI.APIKey == "" {
		return fmt.Errorf("%w: NEWSAPI_API_KEY", ErrMissingAPIKey)
	}

	envKey, ok := apiKeyEnv[c.Summarizer.Provider]
	if !ok {
		return fmt.Errorf("SUMMARIZER_PROVIDER must be one of gemini, claude, openai, got %q", c.Summarizer.Provider)
	}
	if c.Summarizer.APIKey == "" {
		return fmt.Errorf("%w: %s", ErrMissingAPIKey, envKey)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.NewsAPI.BaseURL == "" {
		return fmt.Errorf("NEWSAPI_BASE_URL cannot be empty")
	}
	if c.NewsAPI.Timeout <= 0 {
		return fmt.Errorf("NEWSAPI_TIMEOUT must be positive")
	}
	if c.Summarizer.Timeout <= 0 {
		return fmt.Errorf("SUMMARIZER_TIMEOUT must be positive")
	}
	if c.Summarizer.MaxTokens <= 0 {
		return fmt.Errorf("SUMMARIZER_MAX_TOKENS must be positive, got %d", c.Summarizer.MaxTokens)
	}

	switch c.Scraper.Strategy {
	case StrategyParagraph, StrategyReadability:
	default:
		return fmt.Errorf("SCRAPER_STRATEGY must be paragraph or readability, got %q", c.Scraper.Strategy)
	}
	if c.Scraper.Timeout <= 0 {
		return fmt.Errorf("SCRAPER_TIMEOUT must be positive")
	}
	// 1KB〜100MB
	if c.Scraper.MaxBodySize < 1024 || c.Scraper.MaxBodySize > 100*1024*1024 {
		return fmt.Errorf("SCRAPER_MAX_BODY_SIZE must be between 1024 and %d bytes, got %d", 100*1024*1024, c.Scraper.MaxBodySize)
	}
	if c.Scraper.MaxRedirects < 0 || c.Scraper.MaxRedirects > 10 {
		return fmt.Errorf("SCRAPER_MAX_REDIRECTS must be between 0 and 10, got %d", c.Scraper.MaxRedirects)
	}

	return nil
}

// Addr returns the listen address for the configured port.
func (c *AppConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
