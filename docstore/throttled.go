package docstore

import (
	"context"

	"golang.org/x/time/rate"
)

// Throttled wraps a Store with a request rate limit. Use it in front of
// remote backends when many piecewise functions are loaded at once, so bulk
// loads do not exhaust provider request quotas.
type Throttled struct {
	inner   Store
	limiter *rate.Limiter
}

// NewThrottled wraps inner, allowing rps requests per second with the given
// burst.
func NewThrottled(inner Store, rps float64, burst int) *Throttled {
	return &Throttled{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Fetch waits for the rate limiter, then delegates.
func (t *Throttled) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return t.inner.Fetch(ctx, name)
}

// Put waits for the rate limiter, then delegates.
func (t *Throttled) Put(ctx context.Context, name string, data []byte) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return err
	}
	return t.inner.Put(ctx, name, data)
}

// Delete waits for the rate limiter, then delegates.
func (t *Throttled) Delete(ctx context.Context, name string) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return err
	}
	return t.inner.Delete(ctx, name)
}

// List waits for the rate limiter, then delegates.
func (t *Throttled) List(ctx context.Context, prefix string) ([]string, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return t.inner.List(ctx, prefix)
}
