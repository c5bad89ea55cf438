package llm

import (
	"context"
	"errors"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	apperrors "github.com/LechDutkiewicz/gsport-ai/pkg/errors"
)

// OpenAIConfig configures the OpenAI-backed generator.
type OpenAIConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Pricing   Pricing
}

// OpenAIGenerator implements Generator against the OpenAI chat completions API.
type OpenAIGenerator struct {
	client    openai.Client
	model     string
	maxTokens int64
	pricing   Pricing
}

// NewOpenAIGenerator creates a generator. BaseURL is optional and overrides
// the default endpoint when pointing at a compatible proxy.
func NewOpenAIGenerator(cfg OpenAIConfig) *OpenAIGenerator {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAIGenerator{
		client:    openai.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: int64(cfg.MaxTokens),
		pricing:   cfg.Pricing,
	}
}

// Generate sends the prompt as a single user message and returns the first
// choice with its computed cost.
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (*Result, error) {
	response, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:     openai.ChatModel(g.model),
		MaxTokens: openai.Int(g.maxTokens),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.Deadline("openai", err)
		}
		return nil, apperrors.Upstream("openai", err.Error())
	}

	if len(response.Choices) == 0 {
		return nil, apperrors.Upstream("openai", "response contained no choices")
	}

	return &Result{
		Content:          response.Choices[0].Message.Content,
		PromptTokens:     response.Usage.PromptTokens,
		CompletionTokens: response.Usage.CompletionTokens,
		Cost:             g.pricing.Cost(response.Usage.PromptTokens, response.Usage.CompletionTokens),
	}, nil
}
