package llm

import (
	"context"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/param"
)

// AnthropicClient implements Client for the Claude Messages API.
type AnthropicClient struct {
	client      anthropic.Client
	model       string
	maxTokens   int
	temperature float64
}

// NewAnthropicClient creates the primary backend client.
func NewAnthropicClient(cfg Config) (*AnthropicClient, error) {
	if cfg.AnthropicAPIKey == "" {
		return nil, &UnavailableError{
			Provider: ProviderAnthropic,
			Message:  "ANTHROPIC_API_KEY must be provided or set in environment",
		}
	}

	return &AnthropicClient{
		client:      anthropic.NewClient(option.WithAPIKey(cfg.AnthropicAPIKey)),
		model:       cfg.ClaudeModel,
		maxTokens:   cfg.ClaudeMaxTokens,
		temperature: cfg.Temperature,
	}, nil
}

// Complete submits a single user message and returns the concatenated text
// blocks of the response.
func (c *AnthropicClient) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if maxTokens <= 0 {
		maxTokens = c.maxTokens
	}

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   int64(maxTokens),
		Temperature: param.NewOpt(c.temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", &UnavailableError{
			Provider: ProviderAnthropic,
			Message:  "message request failed",
			Cause:    err,
		}
	}

	var parts []string
	for _, block := range message.Content {
		if block.Text != "" {
			parts = append(parts, block.Text)
		}
	}
	if len(parts) == 0 {
		return "", &UnavailableError{
			Provider: ProviderAnthropic,
			Message:  "response contained no text content",
		}
	}

	return strings.Join(parts, ""), nil
}

// Model returns the configured Claude model identifier.
func (c *AnthropicClient) Model() string {
	return c.model
}
