package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/cogniplay/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with the full
// middleware chain: caller → fallback → retry → logging → base. When a
// fallback model is configured, the secondary route gets its own
// retry+logging chain so exhaustion of the primary hands the request to a
// fresh budget on the cheaper model.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	primary, err := newBaseProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Provider == "mock" {
		return primary, nil
	}

	chain := WithRetry(WithLogging(primary, eventRepo), cfg.Retry)

	fbCfg, ok := cfg.FallbackConfig()
	if !ok {
		return chain, nil
	}

	secondary, err := newBaseProvider(ctx, fbCfg)
	if err != nil {
		// A broken fallback configuration should not take down the
		// primary route.
		return chain, nil
	}
	fbChain := WithRetry(WithLogging(secondary, eventRepo), cfg.Retry)

	return WithFallback(chain, fbChain), nil
}

// NewEvaluationProvider builds the cheaper fallback-model route with its
// own retry+logging chain, for high-volume single-token scoring calls.
// When no fallback model is configured the primary chain is returned
// instead.
func NewEvaluationProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	fbCfg, ok := cfg.FallbackConfig()
	if !ok || cfg.Provider == "mock" {
		return NewProvider(ctx, cfg, eventRepo)
	}
	base, err := newBaseProvider(ctx, fbCfg)
	if err != nil {
		return nil, err
	}
	return WithRetry(WithLogging(base, eventRepo), cfg.Retry), nil
}

// NewProviderFromEnv discovers provider configuration from the environment
// and builds the full middleware chain. Returns an error when no API key
// is configured.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg, err := resolveEnvConfig()
	if err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, eventRepo)
}

// NewEvaluationProviderFromEnv is NewEvaluationProvider with configuration
// discovered from the environment.
func NewEvaluationProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg, err := resolveEnvConfig()
	if err != nil {
		return nil, err
	}
	return NewEvaluationProvider(ctx, cfg, eventRepo)
}

// resolveEnvConfig reads COGNIPLAY_* configuration, falling back to
// standard API key discovery.
func resolveEnvConfig() (Config, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return Config{}, err
		}
		cfg = discovered
	}
	return cfg, nil
}

// newBaseProvider constructs the undecorated provider for cfg.
func newBaseProvider(ctx context.Context, cfg Config) (Provider, error) {
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
	return base, nil
}
