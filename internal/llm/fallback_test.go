package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestFallback_PrimarySuccessSkipsSecondary(t *testing.T) {
	primary := NewMockProvider(MockResponse{Content: json.RawMessage(`"primary"`)})
	secondary := NewMockProvider(MockResponse{Content: json.RawMessage(`"secondary"`)})

	p := WithFallback(primary, secondary)
	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `"primary"` {
		t.Errorf("Content = %s, want primary response", resp.Content)
	}
	if secondary.CallCount() != 0 {
		t.Errorf("secondary called %d times, want 0", secondary.CallCount())
	}
}

func TestFallback_UnavailablePrimaryRoutesToSecondary(t *testing.T) {
	primary := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})
	secondary := NewMockProvider(MockResponse{Content: json.RawMessage(`"secondary"`)})

	p := WithFallback(primary, secondary)
	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `"secondary"` {
		t.Errorf("Content = %s, want secondary response", resp.Content)
	}
}

func TestFallback_RateLimitRoutesToSecondary(t *testing.T) {
	primary := NewMockProvider(MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}})
	secondary := NewMockProvider(MockResponse{Content: json.RawMessage(`"secondary"`)})

	p := WithFallback(primary, secondary)
	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `"secondary"` {
		t.Errorf("Content = %s, want secondary response", resp.Content)
	}
}

func TestFallback_InvalidResponseNotRerouted(t *testing.T) {
	primary := NewMockProvider(MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad json")}})
	secondary := NewMockProvider(MockResponse{Content: json.RawMessage(`"secondary"`)})

	p := WithFallback(primary, secondary)
	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
	if secondary.CallCount() != 0 {
		t.Errorf("secondary called %d times, want 0", secondary.CallCount())
	}
}

func TestFallback_ContextCancelNotRerouted(t *testing.T) {
	primary := NewMockProvider(MockResponse{Err: context.Canceled})
	secondary := NewMockProvider(MockResponse{Content: json.RawMessage(`"secondary"`)})

	p := WithFallback(primary, secondary)
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if secondary.CallCount() != 0 {
		t.Errorf("secondary called %d times, want 0", secondary.CallCount())
	}
}

func TestFallback_BothFailReturnsSecondaryError(t *testing.T) {
	primary := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})
	secondary := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})

	p := WithFallback(primary, secondary)
	_, err := p.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
}
