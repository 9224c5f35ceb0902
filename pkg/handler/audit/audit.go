// Package audit logs every committed ledger change as a structured record.
package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/eventbus"
)

// HandleEvent returns a handler that writes one audit log line per ledger
// event. Events arrive as values from the memory bus and as pointers from
// transports that decode them.
func HandleEvent(logger *slog.Logger) eventbus.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, e eventbus.Event) error {
		log := logger.With(
			"handler", "audit.HandleEvent",
			"event_type", e.Type(),
		)
		switch evt := asPointer(e).(type) {
		case *events.CustomerRegistered:
			log.InfoContext(ctx, "📝 customer registered",
				"customer_id", evt.CustomerID,
				"name", evt.Name,
			)
		case *events.AccountOpened:
			log.InfoContext(ctx, "📝 account opened",
				"account_id", evt.AccountID,
				"customer_id", evt.CustomerID,
				"initial_deposit", evt.InitialDeposit.String(),
			)
		case *events.TransferCompleted:
			log.InfoContext(ctx, "📝 transfer completed",
				"uuid", evt.TransactionID,
				"from", evt.AccountIDFrom,
				"to", evt.AccountIDTo,
				"amount", evt.Amount.String(),
			)
		default:
			err := fmt.Errorf("unexpected event type: %s", e.Type())
			log.Error("unexpected event type", "error", err)
			return err
		}
		return nil
	}
}

// Key identifies the ledger change an event describes, so a redelivered
// event is audited once.
func Key(e eventbus.Event) string {
	switch evt := asPointer(e).(type) {
	case *events.CustomerRegistered:
		return fmt.Sprintf("%s:%d", evt.Type(), evt.CustomerID)
	case *events.AccountOpened:
		return fmt.Sprintf("%s:%d", evt.Type(), evt.AccountID)
	case *events.TransferCompleted:
		return evt.Type() + ":" + evt.TransactionID
	default:
		return ""
	}
}

func asPointer(e eventbus.Event) eventbus.Event {
	switch evt := e.(type) {
	case events.CustomerRegistered:
		return &evt
	case events.AccountOpened:
		return &evt
	case events.TransferCompleted:
		return &evt
	}
	return e
}
