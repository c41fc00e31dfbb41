package summarizer

import (
	"context"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAI summarizes through a Chat Completions API. It serves both OpenAI
// and Gemini, which exposes the same API at GeminiOpenAIBaseURL.
type OpenAI struct {
	base
	client *openai.Client
}

// NewOpenAI creates a summarizer for the OpenAI API.
func NewOpenAI(cfg Config) *OpenAI {
	cfg.Provider = ProviderOpenAI
	return newChatCompletion(cfg.withDefaults(), "")
}

// NewGemini creates a summarizer for Gemini's OpenAI-compatible endpoint.
func NewGemini(cfg Config) *OpenAI {
	cfg.Provider = ProviderGemini
	return newChatCompletion(cfg.withDefaults(), GeminiOpenAIBaseURL)
}

func newChatCompletion(cfg Config, defaultBaseURL string) *OpenAI {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	switch {
	case cfg.BaseURL != "":
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	case defaultBaseURL != "":
		clientCfg.BaseURL = defaultBaseURL
	}

	return &OpenAI{
		base:   newBase(cfg),
		client: openai.NewClientWithConfig(clientCfg),
	}
}

// Summarize sends prompt as a single user message and returns the reply.
func (o *OpenAI) Summarize(ctx context.Context, prompt string) (string, error) {
	return o.run(ctx, prompt, o.complete)
}

func (o *OpenAI) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     o.config.Model,
		MaxTokens: o.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}
