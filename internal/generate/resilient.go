package generate

import (
	"context"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	"github.com/felixgeelhaar/fortify/timeout"

	"github.com/Qadosh7/Fit-Flow/internal/models"
)

// DefaultTimeout bounds one generation including retries.
const DefaultTimeout = 120 * time.Second

// ResilientClient retries a Client once with exponential backoff under an
// overall deadline.
type ResilientClient struct {
	inner   Client
	timeout time.Duration
}

// NewResilientClient wraps inner.
func NewResilientClient(inner Client, d time.Duration) *ResilientClient {
	if d <= 0 {
		d = DefaultTimeout
	}
	return &ResilientClient{inner: inner, timeout: d}
}

func (c *ResilientClient) Plan(ctx context.Context, prefs models.Preferences) ([]RawDay, error) {
	return resilient(ctx, c.timeout, func(ctx context.Context) ([]RawDay, error) {
		return c.inner.Plan(ctx, prefs)
	})
}

func (c *ResilientClient) Alternatives(ctx context.Context, ex models.Exercise, prefs models.Preferences) ([]RawExercise, error) {
	return resilient(ctx, c.timeout, func(ctx context.Context) ([]RawExercise, error) {
		return c.inner.Alternatives(ctx, ex, prefs)
	})
}

func resilient[T any](ctx context.Context, d time.Duration, fn func(context.Context) (T, error)) (T, error) {
	r := retry.New[T](retry.Config{
		MaxAttempts:   2,
		InitialDelay:  time.Second,
		BackoffPolicy: retry.BackoffExponential,
	})
	t := timeout.New[T](timeout.Config{
		DefaultTimeout: d,
	})
	return t.Execute(ctx, d, func(ctx context.Context) (T, error) {
		return r.Do(ctx, fn)
	})
}
