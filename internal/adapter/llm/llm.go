// Package llm adapts external generative text services to a single
// prompt-in, text-out interface.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/fortune-watch/internal/config"
	"github.com/heartmarshall/fortune-watch/internal/domain"
)

// Generator produces text for a prompt. Implementations return an error
// wrapping domain.ErrGeneration when the service answers with no text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// New builds the generator selected by cfg.Provider.
func New(ctx context.Context, cfg config.LLMConfig) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case config.ProviderAnthropic:
		return NewAnthropic(cfg), nil
	case config.ProviderGemini:
		return NewGemini(ctx, cfg)
	case config.ProviderNone:
		return Disabled{}, nil
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", cfg.Provider)
	}
}

// Disabled is a Generator that always fails, forcing callers onto their
// fallback path.
type Disabled struct{}

// Generate implements Generator.
func (Disabled) Generate(context.Context, string) (string, error) {
	return "", fmt.Errorf("llm disabled: %w", domain.ErrGeneration)
}

func emptyResponse(provider string) error {
	return fmt.Errorf("%s: empty response: %w", provider, domain.ErrGeneration)
}
