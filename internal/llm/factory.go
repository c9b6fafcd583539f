package llm

import (
	"context"
	"fmt"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and, when a RequestLog is
// given, request logging middleware.
func NewProvider(ctx context.Context, cfg Config, reqLog *RequestLog) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
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

	// Wrap with middleware: caller → retry → logging → base
	wrapped := base
	if reqLog != nil {
		wrapped = WithLogging(wrapped, reqLog)
	}
	return WithRetry(wrapped, cfg.Retry), nil
}

// NewProviderFromEnv resolves configuration from the environment:
// SOALGEN_* variables first, then standard API key discovery
// (GEMINI_API_KEY, API_KEY, OPENAI_API_KEY, ...).
func NewProviderFromEnv(ctx context.Context, reqLog *RequestLog) (Provider, error) {
	cfg, err := ResolveConfig()
	if err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, reqLog)
}

// ResolveConfig returns the validated environment configuration, falling
// back to key discovery when the SOALGEN_* variables select a provider
// without a key.
func ResolveConfig() (Config, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err == nil {
		return cfg, nil
	}
	if discovered, ok := DiscoverConfig(); ok {
		return discovered, nil
	}
	// Report the original validation error; it names the env var to set.
	return cfg, cfg.Validate()
}
