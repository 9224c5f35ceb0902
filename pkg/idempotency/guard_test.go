package idempotency_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	infracache "github.com/amirasaad/ledger/infra/cache"
	"github.com/amirasaad/ledger/pkg/idempotency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_ReplaysSuccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	g := idempotency.NewGuard(infracache.NewMemoryCache(), "test:", time.Hour, nil)

	calls := 0
	fn := func() ([]byte, error) {
		calls++
		return []byte(`{"uuid":"1"}`), nil
	}

	body, replayed, err := g.Do(ctx, "key-1", fn)
	require.NoError(t, err)
	assert.False(t, replayed)
	assert.Equal(t, `{"uuid":"1"}`, string(body))

	body, replayed, err = g.Do(ctx, "key-1", fn)
	require.NoError(t, err)
	assert.True(t, replayed)
	assert.Equal(t, `{"uuid":"1"}`, string(body))
	assert.Equal(t, 1, calls)
}

func TestGuard_FailuresAreNotStored(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	g := idempotency.NewGuard(infracache.NewMemoryCache(), "test:", time.Hour, nil)
	boom := errors.New("boom")

	_, _, err := g.Do(ctx, "key-2", func() ([]byte, error) { return nil, boom })
	require.ErrorIs(t, err, boom)

	body, replayed, err := g.Do(ctx, "key-2", func() ([]byte, error) { return []byte("ok"), nil })
	require.NoError(t, err)
	assert.False(t, replayed)
	assert.Equal(t, "ok", string(body))
}

func TestGuard_EmptyKeyIsUnguarded(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	g := idempotency.NewGuard(infracache.NewMemoryCache(), "test:", time.Hour, nil)

	calls := 0
	for range 3 {
		_, replayed, err := g.Do(ctx, "", func() ([]byte, error) {
			calls++
			return nil, nil
		})
		require.NoError(t, err)
		assert.False(t, replayed)
	}
	assert.Equal(t, 3, calls)
}

func TestGuard_ConcurrentCallersRunOnce(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	g := idempotency.NewGuard(infracache.NewMemoryCache(), "test:", time.Hour, nil)

	var calls atomic.Int32
	var fresh atomic.Int32
	release := make(chan struct{})
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			body, replayed, err := g.Do(ctx, "key-3", func() ([]byte, error) {
				calls.Add(1)
				<-release
				return []byte("done"), nil
			})
			assert.NoError(t, err)
			assert.Equal(t, "done", string(body))
			if !replayed {
				fresh.Add(1)
			}
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, int32(1), fresh.Load())
}
