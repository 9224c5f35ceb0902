package eventbus

import (
	"context"
	"errors"
	"testing"

	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryEventBus_Emit(t *testing.T) {
	bus := NewWithMemory(nil)
	ctx := context.Background()

	var got []string
	bus.Register(events.TransferCompletedType, func(_ context.Context, e eventbus.Event) error {
		got = append(got, e.(events.TransferCompleted).TransactionID)
		return nil
	})
	bus.Register(events.AccountOpenedType, func(context.Context, eventbus.Event) error {
		t.Fatal("handler for another type must not run")
		return nil
	})

	require.NoError(t, bus.Emit(ctx, events.TransferCompleted{TransactionID: "t-1"}))
	require.NoError(t, bus.Emit(ctx, events.CustomerRegistered{CustomerID: 1}))

	assert.Equal(t, []string{"t-1"}, got)
	assert.Len(t, bus.Published(), 2)

	bus.ClearPublished()
	assert.Empty(t, bus.Published())
}

func TestMemoryEventBus_HandlerFailures(t *testing.T) {
	bus := NewWithMemory(nil)
	ctx := context.Background()
	boom := errors.New("boom")

	ran := 0
	bus.Register(events.AccountOpenedType, func(context.Context, eventbus.Event) error {
		return boom
	})
	bus.Register(events.AccountOpenedType, func(context.Context, eventbus.Event) error {
		panic("bad handler")
	})
	bus.Register(events.AccountOpenedType, func(context.Context, eventbus.Event) error {
		ran++
		return nil
	})

	err := bus.Emit(ctx, events.AccountOpened{AccountID: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "panic in event handler")
	assert.Equal(t, 1, ran)
}

func TestNameFor(t *testing.T) {
	assert.Equal(t, "ledger:events:transfer:completed", streamNameFor("ledger:", events.TransferCompletedType))
	assert.Equal(t, "dlq:account:opened", dlqStreamName("", events.AccountOpenedType))
	assert.Equal(t, "group:customer:registered", groupNameFor(events.CustomerRegisteredType))
	assert.Equal(t, "group:audit", groupNameFor("Audit"))
}
