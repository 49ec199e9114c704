package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// FailoverProvider is a decorator that issues a request to the primary
// provider and, on failure, retries it exactly once against a secondary
// provider. There are no further retries: a failed failover attempt is
// the final error.
type FailoverProvider struct {
	primary   Provider
	secondary Provider
}

// WithFailover wraps a primary and secondary provider into a failover pair.
func WithFailover(primary, secondary Provider) Provider {
	return &FailoverProvider{primary: primary, secondary: secondary}
}

func (f *FailoverProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	resp, err := f.primary.Generate(ctx, req)
	if err == nil {
		return resp, nil
	}

	// Context cancellation is the caller's decision, not a provider
	// fault; switching backends would not help.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, err
	}

	slog.Warn("primary LLM provider failed, trying fallback",
		"primary", f.primary.ModelID(),
		"fallback", f.secondary.ModelID(),
		"error", err)

	resp, ferr := f.secondary.Generate(ctx, req)
	if ferr != nil {
		return nil, fmt.Errorf("both providers failed: primary: %w; fallback: %v", err, ferr)
	}
	return resp, nil
}

func (f *FailoverProvider) ModelID() string {
	return f.primary.ModelID()
}
