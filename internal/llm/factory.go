package llm

import (
	"context"
	"fmt"
)

// NewProvider creates a Provider from configuration. The primary backend
// is wrapped with request logging; when a fallback is configured the
// result is a failover pair that retries a failed call exactly once
// against the alternate backend.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	primary, err := newBase(ctx, cfg, cfg.Provider)
	if err != nil {
		return nil, err
	}
	primary = WithLogging(primary)

	if cfg.Fallback == "" {
		return primary, nil
	}

	secondary, err := newBase(ctx, cfg, cfg.Fallback)
	if err != nil {
		return nil, err
	}
	secondary = WithLogging(secondary)

	return WithFailover(primary, secondary), nil
}

func newBase(ctx context.Context, cfg Config, name string) (Provider, error) {
	var p Provider
	var err error

	switch name {
	case "anthropic":
		p, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		p, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		p, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", name, err)
	}
	return p, nil
}
