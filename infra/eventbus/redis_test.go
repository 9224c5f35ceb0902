package eventbus

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupRedisBus starts a Redis container and returns a bus bound to it.
func setupRedisBus(tb testing.TB) (*RedisEventBus, *redis.Client) {
	tb.Helper()
	if testing.Short() {
		tb.Skip("skipping redis container test in short mode")
	}
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7.0.5",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	if err != nil {
		tb.Fatalf("Failed to start container: %v", err)
	}
	tb.Cleanup(func() { _ = container.Terminate(ctx) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(tb, err)
	client := redis.NewClient(&redis.Options{Addr: endpoint})
	tb.Cleanup(func() { _ = client.Close() })

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	bus, err := NewWithRedis(client, "test:", events.EventTypes, logger)
	require.NoError(tb, err)
	bus.block = 200 * time.Millisecond
	tb.Cleanup(func() { _ = bus.Close() })
	return bus, client
}

func TestRedisBusHandlerReceivesEvent(t *testing.T) {
	bus, _ := setupRedisBus(t)

	received := make(chan events.TransferCompleted, 1)
	bus.Register(events.TransferCompletedType, func(_ context.Context, e eventbus.Event) error {
		received <- *e.(*events.TransferCompleted)
		return nil
	})

	err := bus.Emit(context.Background(), events.TransferCompleted{
		TransactionID: "t-1",
		AccountIDFrom: 1,
		AccountIDTo:   2,
		Amount:        decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	select {
	case got := <-received:
		assert.Equal(t, "t-1", got.TransactionID)
		assert.Equal(t, uint(2), got.AccountIDTo)
		assert.True(t, got.Amount.Equal(decimal.NewFromInt(10)))
	case <-time.After(5 * time.Second):
		t.Fatal("handler did not receive event in time")
	}
}

func TestRedisBusMultipleEvents(t *testing.T) {
	bus, _ := setupRedisBus(t)

	var count atomic.Int32
	done := make(chan struct{})
	bus.Register(events.AccountOpenedType, func(context.Context, eventbus.Event) error {
		if count.Add(1) == 3 {
			close(done)
		}
		return nil
	})

	for i := range 3 {
		require.NoError(t, bus.Emit(context.Background(), events.AccountOpened{AccountID: uint(i + 1)}))
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("not all events were received")
	}
}

func TestRedisBusDLQAndReplay(t *testing.T) {
	bus, client := setupRedisBus(t)
	ctx := context.Background()

	var fail atomic.Bool
	fail.Store(true)
	received := make(chan string, 1)
	bus.Register(events.CustomerRegisteredType, func(_ context.Context, e eventbus.Event) error {
		if fail.Load() {
			return errors.New("temporary failure")
		}
		received <- e.(*events.CustomerRegistered).Name
		return nil
	})

	require.NoError(t, bus.Emit(ctx, events.CustomerRegistered{CustomerID: 1, Name: "Thomas Anderson"}))

	dlq := dlqStreamName("test:", events.CustomerRegisteredType)
	require.Eventually(t, func() bool {
		n, err := client.XLen(ctx, dlq).Result()
		return err == nil && n == 1
	}, 5*time.Second, 100*time.Millisecond)

	fail.Store(false)
	moved, err := bus.ReplayDLQ(ctx, events.CustomerRegisteredType)
	require.NoError(t, err)
	assert.Equal(t, 1, moved)

	select {
	case name := <-received:
		assert.Equal(t, "Thomas Anderson", name)
	case <-time.After(5 * time.Second):
		t.Fatal("DLQ replay did not redeliver the event")
	}
	n, err := client.XLen(ctx, dlq).Result()
	require.NoError(t, err)
	assert.Zero(t, n)
}
