package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds provider configuration for question generation.
type Config struct {
	// Provider selects the primary backend.
	// Values: "anthropic", "openai", "gemini", "mock".
	Provider string

	// Fallback selects the alternate backend tried exactly once when the
	// primary fails. Empty means no failover.
	Fallback string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig

	// Timeout bounds a single generation call, including the failover
	// attempt. Default: 90s (a full question batch is a long response).
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific settings.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific settings.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional override for OpenAI-compatible APIs.
}

// GeminiConfig holds Gemini-specific settings.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "openai",
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		Timeout: 90 * time.Second,
	}
}

// ConfigFromEnv builds a Config from PHARMAQUIZ_* environment variables,
// falling back to the plain provider key variables and then to defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("PHARMAQUIZ_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	if p := os.Getenv("PHARMAQUIZ_LLM_FALLBACK"); p != "" {
		cfg.Fallback = p
	}

	cfg.Anthropic.APIKey = firstEnv("PHARMAQUIZ_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY")
	if m := os.Getenv("PHARMAQUIZ_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	cfg.OpenAI.APIKey = firstEnv("PHARMAQUIZ_OPENAI_API_KEY", "OPENAI_API_KEY")
	if m := os.Getenv("PHARMAQUIZ_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("PHARMAQUIZ_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	cfg.Gemini.APIKey = firstEnv("PHARMAQUIZ_GEMINI_API_KEY", "GEMINI_API_KEY")
	if m := os.Getenv("PHARMAQUIZ_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	if raw := os.Getenv("PHARMAQUIZ_LLM_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	// With no explicit provider selection, pick the first backend that
	// has a key, and use the next one as the fallback.
	if os.Getenv("PHARMAQUIZ_LLM_PROVIDER") == "" {
		configured := cfg.configuredProviders()
		if len(configured) > 0 {
			cfg.Provider = configured[0]
		}
		if cfg.Fallback == "" && len(configured) > 1 {
			cfg.Fallback = configured[1]
		}
	}

	return cfg
}

// configuredProviders returns the backends with API keys set, in
// openai, anthropic, gemini order.
func (c Config) configuredProviders() []string {
	var out []string
	if c.OpenAI.APIKey != "" {
		out = append(out, "openai")
	}
	if c.Anthropic.APIKey != "" {
		out = append(out, "anthropic")
	}
	if c.Gemini.APIKey != "" {
		out = append(out, "gemini")
	}
	return out
}

// Validate checks that the selected providers have their keys set.
func (c Config) Validate() error {
	if err := c.validateOne(c.Provider); err != nil {
		return err
	}
	if c.Fallback != "" {
		if c.Fallback == c.Provider {
			return fmt.Errorf("fallback provider must differ from primary %q", c.Provider)
		}
		return c.validateOne(c.Fallback)
	}
	return nil
}

func (c Config) validateOne(name string) error {
	switch name {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("PHARMAQUIZ_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("PHARMAQUIZ_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("PHARMAQUIZ_GEMINI_API_KEY is required for the gemini provider")
		}
	case "mock":
		// No key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", name)
	}
	return nil
}

func firstEnv(names ...string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}
