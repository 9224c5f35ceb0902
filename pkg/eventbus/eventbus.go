// Package eventbus defines the contract between the ledger core and the
// transports that deliver its domain events.
package eventbus

import (
	"context"
)

// Event is implemented by every domain event.
type Event interface {
	Type() string
}

// HandlerFunc handles one delivered event.
type HandlerFunc func(ctx context.Context, e Event) error

// Bus publishes domain events and dispatches them to registered handlers.
type Bus interface {
	Emit(ctx context.Context, event Event) error
	Register(eventType string, handler HandlerFunc)
}
