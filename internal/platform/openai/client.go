package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/lexiblog/lexiblog-api/internal/config"
	"github.com/lexiblog/lexiblog-api/internal/generation"
	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// ProviderName identifies this adapter in logs and metrics.
const ProviderName = "openai"

const finishReasonContentFilter = "content_filter"

// Factory builds OpenAI-compatible clients from the LLM configuration.
type Factory struct {
	apiKey  string
	baseURL string
	model   string
	logger  *slog.Logger
}

// NewFactory creates a Factory. The API key may be empty; the failure is
// reported by NewClient, at time of use.
func NewFactory(cfg config.LLMConfig, logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{
		apiKey:  cfg.OpenAIAPIKey,
		baseURL: cfg.OpenAIBaseURL,
		model:   cfg.ModelName,
		logger:  logger.With("provider", ProviderName),
	}
}

// Provider implements generation.ClientFactory.
func (f *Factory) Provider() string {
	return ProviderName
}

// NewClient implements generation.ClientFactory.
func (f *Factory) NewClient(_ context.Context) (generation.Client, error) {
	if f.apiKey == "" {
		return nil, fmt.Errorf("%w: openai API key is empty", generation.ErrAuthentication)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(f.apiKey),
		option.WithMaxRetries(0),
	}
	if f.baseURL != "" {
		opts = append(opts, option.WithBaseURL(f.baseURL))
	}

	return &Client{
		api:          openai.NewClient(opts...),
		defaultModel: f.model,
		logger:       f.logger,
	}, nil
}

// Client sends prompts as a single user message to a chat completion endpoint.
type Client struct {
	api          openai.Client
	defaultModel string
	logger       *slog.Logger
}

// Generate implements generation.Client.
func (c *Client) Generate(ctx context.Context, prompt string, cfg generation.Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	model := cfg.Model
	if model == "" {
		model = c.defaultModel
	}
	if model == "" {
		return "", fmt.Errorf("%w: model name is empty", generation.ErrInvalidConfig)
	}

	if len(cfg.Safety) > 0 {
		c.logger.DebugContext(ctx, "safety settings not supported by provider, skipping",
			"settings", len(cfg.Safety))
	}

	if cfg.Output == generation.OutputJSON {
		withSchema, err := appendSchema(prompt, cfg.Schema)
		if err != nil {
			return "", err
		}
		prompt = withSchema
	}

	c.logger.DebugContext(ctx, "calling chat completions",
		"model", model,
		"output", cfg.Output.String(),
		"prompt_length", len(prompt))

	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{openai.UserMessage(prompt)},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", generation.ErrUpstream, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices", generation.ErrMalformedResponse)
	}
	choice := resp.Choices[0]
	if choice.FinishReason == finishReasonContentFilter {
		return "", fmt.Errorf("%w: response stopped by content filter", generation.ErrContentBlocked)
	}
	if choice.Message.Refusal != "" {
		return "", fmt.Errorf("%w: %s", generation.ErrContentBlocked, choice.Message.Refusal)
	}

	return choice.Message.Content, nil
}

// appendSchema adds the JSON Schema of the expected reply to the prompt.
func appendSchema(prompt string, schema *generation.Schema) (string, error) {
	doc, err := json.MarshalIndent(schema.JSONSchema(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: failed to encode schema: %v", generation.ErrInvalidConfig, err)
	}
	return prompt + "\n\nRespond with a single JSON object, without Markdown fences, matching this JSON Schema:\n" + string(doc), nil
}
