package llm

import (
	"context"
	"errors"
	"math"
	"time"
)

// RetryProvider is a decorator that retries quota and transient-server
// errors with exponential backoff. Fatal errors (schema violations,
// truncation, anything unclassified) abort immediately.
type RetryProvider struct {
	inner  Provider
	config RetryConfig

	// sleep is swapped out in tests to record waits.
	sleep func(ctx context.Context, d time.Duration) error
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, config: cfg, sleep: sleepCtx}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error

	for attempt := range r.config.MaxAttempts {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable(err) {
			return nil, err
		}

		// Last attempt — don't sleep, just consolidate.
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		if err := r.sleep(ctx, r.backoff(attempt, err)); err != nil {
			return nil, err
		}
	}

	return nil, &ErrRetriesExhausted{
		Op:       PurposeFrom(ctx),
		Attempts: r.config.MaxAttempts,
		Err:      lastErr,
	}
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// retryable reports whether an error belongs to a retryable class.
// Only quota (rate limit) and transient-server errors qualify.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var rl *ErrRateLimit
	if errors.As(err, &rl) {
		return true
	}
	var unavail *ErrProviderUnavailable
	if errors.As(err, &unavail) {
		return true
	}

	// Schema violations, truncation, missing output: fatal.
	return false
}

// backoff computes the wait duration for the given attempt: the fixed
// base doubled each attempt, capped at MaxWait. A server-provided
// Retry-After takes precedence.
func (r *RetryProvider) backoff(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}
	return time.Duration(wait)
}
