package scenario

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/cogniplay/internal/llm"
)

func TestParseScore(t *testing.T) {
	tests := []struct {
		input  string
		want   float64
		wantOK bool
	}{
		{"85", 85, true},
		{"85.5", 85.5, true},
		{"Score: 92", 92, true},
		{"I'd rate this 78 out of 100", 78, true},
		{"150", 100, true},
		{"0", 0, true},
		{"7.", 7, true},
		{"no digits here", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseScore(tt.input)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("parseScore(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestEvaluateParsesScore(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`85`)})
	ev := NewEvaluator(mock, DefaultEvaluatorConfig())

	score := ev.Evaluate(context.Background(), TypeNegotiation, "a tense standoff", "offer a compromise", "the other side softens")
	if score != 85 {
		t.Errorf("score = %v, want 85", score)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestEvaluatePromptCarriesAllInputs(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`70`)})
	ev := NewEvaluator(mock, DefaultEvaluatorConfig())

	ev.Evaluate(context.Background(), TypeNegotiation,
		"the vendor demands more", "hold firm on price", "the vendor backs down")

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	prompt := mock.Calls[0].Messages[0].Content
	for _, want := range []string{
		"the vendor demands more",
		"hold firm on price",
		"the vendor backs down",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
	// The decision appears once, in the rubric message.
	if n := strings.Count(prompt, "hold firm on price"); n != 1 {
		t.Errorf("decision appears %d times in prompt, want 1", n)
	}
}

func TestEvaluateClampsScore(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`150`)})
	ev := NewEvaluator(mock, DefaultEvaluatorConfig())

	score := ev.Evaluate(context.Background(), TypeLeadership, "situation", "decision", "outcome")
	if score != 100 {
		t.Errorf("score = %v, want 100", score)
	}
}

func TestEvaluateFallsBackOnError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	ev := NewEvaluator(mock, DefaultEvaluatorConfig())

	score := ev.Evaluate(context.Background(), TypeNegotiation, "situation", "decision", "outcome")
	if want := DefaultEvaluatorConfig().FallbackScore; score != want {
		t.Errorf("score = %v, want fallback %v", score, want)
	}
}

func TestEvaluateFallsBackOnGarbage(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"hard to say"`)})
	ev := NewEvaluator(mock, DefaultEvaluatorConfig())

	score := ev.Evaluate(context.Background(), TypeNegotiation, "situation", "decision", "outcome")
	if want := DefaultEvaluatorConfig().FallbackScore; score != want {
		t.Errorf("score = %v, want fallback %v", score, want)
	}
}

func TestEvaluateFallbackScoreConfigurable(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	cfg := DefaultEvaluatorConfig()
	cfg.FallbackScore = 50
	ev := NewEvaluator(mock, cfg)

	score := ev.Evaluate(context.Background(), TypeNegotiation, "situation", "decision", "outcome")
	if score != 50 {
		t.Errorf("score = %v, want configured fallback 50", score)
	}
}
