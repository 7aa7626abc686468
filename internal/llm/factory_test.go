package llm

import (
	"context"
	"testing"
)

func TestNewEvaluationProviderUsesFallbackModel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openai"
	cfg.OpenAI.APIKey = "test-key"
	cfg.FallbackModel = "gpt-4o-mini"

	p, err := NewEvaluationProvider(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.ModelID(); got != "gpt-4o-mini" {
		t.Errorf("ModelID() = %q, want fallback model %q", got, "gpt-4o-mini")
	}
}

func TestNewEvaluationProviderWithoutFallbackUsesPrimary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openai"
	cfg.OpenAI.APIKey = "test-key"
	cfg.OpenAI.Model = "gpt-4o"
	cfg.FallbackModel = ""

	p, err := NewEvaluationProvider(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.ModelID(); got != "gpt-4o" {
		t.Errorf("ModelID() = %q, want primary model %q", got, "gpt-4o")
	}
}
