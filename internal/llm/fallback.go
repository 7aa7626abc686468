package llm

import (
	"context"
	"errors"
)

// FallbackProvider is a decorator that routes a request to a secondary
// provider when the primary fails with an availability-class error. The
// secondary is typically the same backend configured with a cheaper model.
type FallbackProvider struct {
	primary   Provider
	secondary Provider
}

// WithFallback wraps primary so that availability failures are replayed
// on secondary.
func WithFallback(primary, secondary Provider) Provider {
	return &FallbackProvider{primary: primary, secondary: secondary}
}

func (f *FallbackProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	resp, err := f.primary.Generate(ctx, req)
	if err == nil {
		return resp, nil
	}

	if !shouldFallBack(err) {
		return nil, err
	}

	return f.secondary.Generate(ctx, req)
}

// ModelID reports the primary model; the secondary is an internal detail.
func (f *FallbackProvider) ModelID() string {
	return f.primary.ModelID()
}

// shouldFallBack reports whether an error warrants rerouting to the
// secondary model. Context cancellation and schema problems are not
// availability failures; a different model will not fix them.
func shouldFallBack(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var invResp *ErrInvalidResponse
	if errors.As(err, &invResp) {
		return false
	}
	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return false
	}

	return true
}
