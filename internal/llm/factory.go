package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/quizdrill/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry and
// logging middleware. The mock provider is returned bare for tests.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Middleware order: caller -> retry -> logging -> base, so every
	// attempt is logged individually.
	logged := WithLogging(base, cfg.Provider, events)
	return WithRetry(logged, cfg.Retry), nil
}

// NewProviderFromEnv builds a provider from QUIZDRILL_* env configuration.
// When no provider is explicitly selected and its key is missing, bare API
// key variables (GEMINI_API_KEY etc.) are probed as a fallback.
func NewProviderFromEnv(ctx context.Context, events store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	err := cfg.Validate()
	if err != nil && os.Getenv("QUIZDRILL_LLM_PROVIDER") == "" {
		if discovered, ok := DiscoverConfig(); ok {
			cfg = discovered
			err = nil
		}
	}
	if err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, events)
}
