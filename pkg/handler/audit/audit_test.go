package audit

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type unknownEvent struct{}

func (unknownEvent) Type() string { return "unknown" }

func TestHandleEvent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	handler := HandleEvent(logger)
	ctx := context.Background()

	require.NoError(t, handler(ctx, events.CustomerRegistered{CustomerID: 1, Name: "Thomas Anderson"}))
	require.NoError(t, handler(ctx, &events.AccountOpened{AccountID: 2, CustomerID: 1, InitialDeposit: decimal.NewFromInt(1000)}))
	require.NoError(t, handler(ctx, events.TransferCompleted{TransactionID: "abc", AccountIDFrom: 2, AccountIDTo: 3, Amount: decimal.NewFromInt(10)}))

	out := buf.String()
	assert.Contains(t, out, "customer registered")
	assert.Contains(t, out, "initial_deposit=1000")
	assert.Contains(t, out, "uuid=abc")

	assert.Error(t, handler(ctx, unknownEvent{}))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "customer.registered:7", Key(events.CustomerRegistered{CustomerID: 7}))
	assert.Equal(t, "customer.registered:7", Key(&events.CustomerRegistered{CustomerID: 7}))
	assert.Equal(t, "account.opened:3", Key(events.AccountOpened{AccountID: 3}))
	assert.Equal(t, "transfer.completed:u-1", Key(&events.TransferCompleted{TransactionID: "u-1"}))
	assert.Empty(t, Key(unknownEvent{}))
}
