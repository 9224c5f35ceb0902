// Package idempotency makes retried operations safe: HTTP requests carrying
// an Idempotency-Key and event deliveries that may be repeated.
package idempotency

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/ledger/pkg/cache"
	"golang.org/x/sync/singleflight"
)

// DefaultTTL is how long a result is kept when no TTL is configured.
const DefaultTTL = 24 * time.Hour

// Guard runs an operation at most once per key while its result is cached.
// Concurrent callers with the same key wait for the in-flight attempt.
type Guard struct {
	cache    cache.Cache
	ttl      time.Duration
	prefix   string
	inflight singleflight.Group
	logger   *slog.Logger
}

// NewGuard creates a Guard storing results in c for ttl under keys
// starting with prefix.
func NewGuard(c cache.Cache, prefix string, ttl time.Duration, logger *slog.Logger) *Guard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Guard{
		cache:  c,
		ttl:    ttl,
		prefix: prefix,
		logger: logger.With("component", "idempotency"),
	}
}

type outcome struct {
	body []byte
}

// Do returns the stored result for key, or runs fn and stores its result
// when fn succeeds. replayed reports whether the result came from an
// earlier call. An empty key runs fn unguarded. Failures are never stored,
// so a failed attempt can be retried with the same key.
func (g *Guard) Do(
	ctx context.Context,
	key string,
	fn func() ([]byte, error),
) (body []byte, replayed bool, err error) {
	if key == "" {
		body, err = fn()
		return body, false, err
	}
	k := g.prefix + key
	log := g.logger.With("idempotency_key", key)

	if cached := g.lookup(ctx, k, log); cached != nil {
		log.Info("🔁 [SKIP] Request already processed")
		return cached, true, nil
	}

	executed := false
	v, err, _ := g.inflight.Do(k, func() (any, error) {
		// another caller may have completed while we waited
		if cached := g.lookup(ctx, k, log); cached != nil {
			return outcome{body: cached}, nil
		}
		executed = true
		out, err := fn()
		if err != nil {
			return nil, err
		}
		if err := g.cache.Set(ctx, k, out, g.ttl); err != nil {
			log.Warn("failed to store idempotent result", "error", err)
		}
		return outcome{body: out}, nil
	})
	if err != nil {
		return nil, false, err
	}
	return v.(outcome).body, !executed, nil
}

func (g *Guard) lookup(ctx context.Context, key string, log *slog.Logger) []byte {
	cached, err := g.cache.Get(ctx, key)
	if err != nil {
		log.Warn("idempotency cache unavailable", "error", err)
		return nil
	}
	return cached
}
