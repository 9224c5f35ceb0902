package app

import (
	"time"

	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/handler/audit"
	"github.com/amirasaad/ledger/pkg/idempotency"
)

// setupEventBus registers the audit handler for every ledger event type.
func (a *App) setupEventBus() {
	bus := a.Deps.EventBus
	if bus == nil {
		return
	}
	logger := a.Deps.Logger
	var tracker *idempotency.Tracker
	if a.Deps.Cache != nil {
		tracker = idempotency.NewTracker(a.Deps.Cache, "processed:", a.idempotencyTTL())
	}

	for _, eventType := range []string{
		events.CustomerRegisteredType,
		events.AccountOpenedType,
		events.TransferCompletedType,
	} {
		handler := audit.HandleEvent(logger)
		if tracker != nil {
			handler = idempotency.WithIdempotency(handler, tracker, audit.Key, "audit.HandleEvent", logger)
		}
		bus.Register(eventType, handler)
	}
}

func (a *App) idempotencyTTL() time.Duration {
	if a.Config != nil && a.Config.Idempotency != nil && a.Config.Idempotency.TTL > 0 {
		return a.Config.Idempotency.TTL
	}
	return idempotency.DefaultTTL
}
