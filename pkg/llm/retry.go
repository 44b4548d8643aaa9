package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Retry defaults.
const (
	DefaultMaxAttempts = 3
	defaultBaseBackoff = time.Second
)

// RetryingAdapter wraps another adapter with exponential backoff on
// transient errors. Authentication and contract errors pass through
// immediately.
type RetryingAdapter struct {
	inner       Adapter
	maxAttempts int
	baseBackoff time.Duration
	logger      *slog.Logger
}

// NewRetryingAdapter wraps inner with the default retry policy.
func NewRetryingAdapter(inner Adapter) *RetryingAdapter {
	return &RetryingAdapter{
		inner:       inner,
		maxAttempts: DefaultMaxAttempts,
		baseBackoff: defaultBaseBackoff,
		logger:      slog.Default(),
	}
}

// Complete implements Adapter with up to maxAttempts tries.
func (r *RetryingAdapter) Complete(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		resp, err := r.inner.Complete(ctx, req)
		if err == nil {
			return resp, nil
		}
		if !IsTransient(err) {
			return nil, err
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}
		backoff := r.baseBackoff << (attempt - 1)
		r.logger.Warn("transient LLM error, backing off",
			slog.Int("attempt", attempt),
			slog.Duration("backoff", backoff),
			slog.Any("error", err))
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrTimeout, ctx.Err())
		}
	}
	return nil, fmt.Errorf("llm call failed after %d attempts: %w", r.maxAttempts, lastErr)
}

// Stream implements Adapter. Streams are not replayed; only the
// initial connection attempt is retried by the inner adapter's caller.
func (r *RetryingAdapter) Stream(ctx context.Context, req Request) (<-chan string, <-chan error) {
	return r.inner.Stream(ctx, req)
}
