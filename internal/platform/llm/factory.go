// Package llm selects the language model adapter named in configuration.
package llm

import (
	"fmt"
	"log/slog"

	"github.com/lexiblog/lexiblog-api/internal/config"
	"github.com/lexiblog/lexiblog-api/internal/generation"
	"github.com/lexiblog/lexiblog-api/internal/platform/gemini"
	"github.com/lexiblog/lexiblog-api/internal/platform/openai"
)

// NewFactory returns the ClientFactory of cfg.Provider. An empty provider
// selects Gemini.
func NewFactory(cfg config.LLMConfig, logger *slog.Logger) (generation.ClientFactory, error) {
	switch cfg.Provider {
	case config.ProviderGemini, "":
		return gemini.NewFactory(cfg, logger.With("component", "gemini")), nil
	case config.ProviderOpenAI:
		return openai.NewFactory(cfg, logger.With("component", "openai")), nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}
}
