package summarizer

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Claude summarizes through Anthropic's Messages API.
type Claude struct {
	base
	client anthropic.Client
}

// NewClaude creates a Claude summarizer. The SDK's built-in retries are
// disabled so each request reaches the API at most once.
func NewClaude(cfg Config) *Claude {
	cfg.Provider = ProviderClaude
	cfg = cfg.withDefaults()

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Claude{
		base:   newBase(cfg),
		client: anthropic.NewClient(opts...),
	}
}

// Summarize sends prompt as a single user message and returns the reply.
func (c *Claude) Summarize(ctx context.Context, prompt string) (string, error) {
	return c.run(ctx, prompt, c.complete)
}

func (c *Claude) complete(ctx context.Context, prompt string) (string, error) {
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.config.Model),
		MaxTokens: int64(c.config.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(prompt),
			),
		},
	})
	if err != nil {
		return "", err
	}

	if len(message.Content) == 0 {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(tb.Text)
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("claude api returned unexpected response type")
	}
	return sb.String(), nil
}
