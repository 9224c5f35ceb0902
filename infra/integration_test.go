package infra_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/amirasaad/ledger/infra"
	infraeventbus "github.com/amirasaad/ledger/infra/eventbus"
	infrarepo "github.com/amirasaad/ledger/infra/repository"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/service/ledger"
	"github.com/amirasaad/ledger/pkg/testutils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	pg, err := tcpostgres.Run(
		ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("ledger"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = testcontainers.TerminateContainer(pg)
	})
	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	return dsn
}

func TestPostgresLedger_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	dsn := startPostgres(t)

	db, driver, err := infra.NewDBConnection(&config.DB{Url: dsn}, "test")
	require.NoError(t, err)
	require.Equal(t, infra.DriverPostgres, driver)
	require.NoError(t, infra.Migrate(db, driver))
	// a second run is a no-op
	require.NoError(t, infra.Migrate(db, driver))

	logger := testutils.DiscardLogger()
	svc := ledger.New(infrarepo.NewUoW(db), infraeventbus.NewWithMemory(logger), logger)
	ctx := context.Background()

	_, err = svc.RegisterCustomer(ctx, "thomas", "anderson", "abc")
	require.NoError(t, err)
	_, err = svc.RegisterCustomer(ctx, "keanu", "reeves", "efg")
	require.NoError(t, err)
	_, err = svc.RegisterCustomer(ctx, "thomas", "anderson", "abc")
	require.ErrorIs(t, err, domain.ErrCustomerAlreadyExists)

	a, err := svc.OpenAccount(ctx, "thomas", "anderson", "abc", decimal.NewFromInt(1000))
	require.NoError(t, err)
	b, err := svc.OpenAccount(ctx, "keanu", "reeves", "efg", decimal.NewFromInt(999))
	require.NoError(t, err)

	t.Run("concurrent opposite transfers", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 25; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				_, err := svc.Transfer(ctx, a.ID, b.ID, decimal.RequireFromString("1.5"))
				assert.NoError(t, err)
			}()
			go func() {
				defer wg.Done()
				_, err := svc.Transfer(ctx, b.ID, a.ID, decimal.NewFromInt(1))
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		balA, err := svc.GetBalance(ctx, a.ID)
		require.NoError(t, err)
		balB, err := svc.GetBalance(ctx, b.ID)
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("987.5").Equal(balA), balA.String())
		assert.True(t, decimal.NewFromInt(1999).Equal(balA.Add(balB)))

		history, err := svc.GetTransactionHistory(ctx, a.ID)
		require.NoError(t, err)
		assert.Len(t, history, 50)
	})

	t.Run("missing accounts", func(t *testing.T) {
		_, err := svc.Transfer(ctx, 999, 998, decimal.NewFromInt(10))
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	})
}
