package pipeline

import (
	"context"
	"sync"

	"github.com/fwojciec/obfeed"
	"golang.org/x/time/rate"
)

var _ obfeed.HostLimiter = (*HostLimiter)(nil)

// HostLimiter rate limits requests per host using token buckets. Each host
// gets its own limiter with a burst of 1. Sites are fetched one after
// another, but many configured blogs can live on the same platform host,
// so a batch would otherwise hit that host back to back.
type HostLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewHostLimiter creates a HostLimiter allowing rps requests per second to
// each host. A non-positive rps disables limiting.
func NewHostLimiter(rps float64) *HostLimiter {
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to host.
// Returns an error if the context is canceled before the wait completes.
func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	if l.rps <= 0 {
		return ctx.Err()
	}

	l.mu.Lock()
	limiter, ok := l.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.rps), 1)
		l.limiters[host] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
