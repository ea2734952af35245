package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lexiblog/lexiblog-api/internal/config"
	"github.com/lexiblog/lexiblog-api/internal/generation"
	"google.golang.org/genai"
)

// ProviderName identifies this adapter in logs and metrics.
const ProviderName = "gemini"

// contentGenerator is the part of *genai.Models used by Client.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Factory builds Gemini clients from the LLM configuration.
type Factory struct {
	apiKey string
	model  string
	logger *slog.Logger
}

// NewFactory creates a Factory. The API key may be empty; the failure is
// reported by NewClient, at time of use.
func NewFactory(cfg config.LLMConfig, logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{
		apiKey: cfg.GeminiAPIKey,
		model:  cfg.ModelName,
		logger: logger.With("provider", ProviderName),
	}
}

// Provider implements generation.ClientFactory.
func (f *Factory) Provider() string {
	return ProviderName
}

// NewClient implements generation.ClientFactory.
func (f *Factory) NewClient(ctx context.Context) (generation.Client, error) {
	if f.apiKey == "" {
		return nil, fmt.Errorf("%w: gemini API key is empty", generation.ErrAuthentication)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  f.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return newClient(client.Models, f.model, f.logger), nil
}

// Client sends prompts to Gemini.
type Client struct {
	models       contentGenerator
	defaultModel string
	logger       *slog.Logger
}

func newClient(models contentGenerator, defaultModel string, logger *slog.Logger) *Client {
	return &Client{
		models:       models,
		defaultModel: defaultModel,
		logger:       logger,
	}
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

	c.logger.DebugContext(ctx, "calling Gemini",
		"model", model,
		"output", cfg.Output.String(),
		"prompt_length", len(prompt))

	resp, err := c.models.GenerateContent(ctx, model, genai.Text(prompt), contentConfig(cfg))
	if err != nil {
		return "", fmt.Errorf("%w: %v", generation.ErrUpstream, err)
	}

	text, err := responseText(resp)
	if err != nil {
		return "", err
	}

	c.logger.DebugContext(ctx, "Gemini call succeeded",
		"model", model,
		"response_length", len(text))

	return text, nil
}

// responseText concatenates the text parts of the first candidate. Thought
// parts are skipped.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrMalformedResponse)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked (%s)", generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", generation.ErrMalformedResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: response stopped by safety filters", generation.ErrContentBlocked)
	}
	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrMalformedResponse)
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}

	return sb.String(), nil
}
