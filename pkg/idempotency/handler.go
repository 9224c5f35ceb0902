package idempotency

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/ledger/pkg/cache"
	"github.com/amirasaad/ledger/pkg/eventbus"
	"golang.org/x/sync/singleflight"
)

// KeyExtractor extracts an idempotency key from an event
type KeyExtractor func(eventbus.Event) string

// Tracker records processed event keys in a cache. Keys expire after the
// tracker's TTL, so the record stays bounded by the cache's own eviction.
type Tracker struct {
	cache    cache.Cache
	prefix   string
	ttl      time.Duration
	inflight singleflight.Group
}

// NewTracker creates a tracker storing keys in c under prefix for ttl.
// A ttl of zero or less uses DefaultTTL.
func NewTracker(c cache.Cache, prefix string, ttl time.Duration) *Tracker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Tracker{cache: c, prefix: prefix, ttl: ttl}
}

// Processed reports whether key has been handled successfully. A cache
// failure counts as not processed so the event is handled again.
func (t *Tracker) Processed(ctx context.Context, key string) bool {
	v, err := t.cache.Get(ctx, t.prefix+key)
	return err == nil && v != nil
}

func (t *Tracker) markProcessed(ctx context.Context, key string) error {
	return t.cache.Set(ctx, t.prefix+key, []byte{1}, t.ttl)
}

// WithIdempotency wraps a handler so each key is handled successfully at
// most once while the tracker remembers it. Events without a key always
// reach the handler.
func WithIdempotency(
	handler eventbus.HandlerFunc,
	tracker *Tracker,
	keyExtractor KeyExtractor,
	handlerName string,
	logger *slog.Logger,
) eventbus.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, e eventbus.Event) error {
		key := keyExtractor(e)
		if key == "" {
			return handler(ctx, e)
		}

		log := logger.With(
			"handler", handlerName,
			"event_type", e.Type(),
			"idempotency_key", key,
		)

		if tracker.Processed(ctx, key) {
			log.Info("🔁 [SKIP] Event already processed")
			return nil
		}

		_, err, _ := tracker.inflight.Do(key, func() (any, error) {
			if tracker.Processed(ctx, key) {
				return nil, nil
			}
			if err := handler(ctx, e); err != nil {
				return nil, err
			}
			if err := tracker.markProcessed(ctx, key); err != nil {
				log.Warn("failed to record processed event", "error", err)
			}
			return nil, nil
		})
		return err
	}
}
