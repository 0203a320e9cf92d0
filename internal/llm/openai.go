package llm

import (
	"context"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// systemPrompt frames every fallback request; the per-call prompt carries
// the actual task.
const openaiSystemPrompt = "You are an expert Agile Product Owner and Technical Architect with 15+ years of experience. " +
	"You create comprehensive, production-ready user stories with detailed acceptance criteria and technical implementation tasks."

// OpenAIClient implements Client for the Chat Completions API. It is the
// reserve backend: wired and ready, selected only through
// StrategyFallback.
type OpenAIClient struct {
	client    openai.Client
	model     string
	maxTokens int
}

// NewOpenAIClient creates the fallback backend client.
func NewOpenAIClient(cfg Config) (*OpenAIClient, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, &UnavailableError{
			Provider: ProviderOpenAI,
			Message:  "OPENAI_API_KEY must be provided or set in environment",
		}
	}

	return &OpenAIClient{
		client:    openai.NewClient(option.WithAPIKey(cfg.OpenAIAPIKey)),
		model:     cfg.GPTModel,
		maxTokens: cfg.GPTMaxTokens,
	}, nil
}

// Complete submits the prompt in JSON-object response mode and returns the
// first choice's message content.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if maxTokens <= 0 {
		maxTokens = c.maxTokens
	}

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               shared.ChatModel(c.model),
		MaxCompletionTokens: openai.Int(int64(maxTokens)),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(openaiSystemPrompt),
			openai.UserMessage(prompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		return "", &UnavailableError{
			Provider: ProviderOpenAI,
			Message:  "chat completion request failed",
			Cause:    err,
		}
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", &UnavailableError{
			Provider: ProviderOpenAI,
			Message:  "response contained no message content",
		}
	}

	return completion.Choices[0].Message.Content, nil
}

// Model returns the configured GPT model identifier.
func (c *OpenAIClient) Model() string {
	return c.model
}
