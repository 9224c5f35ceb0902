package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ShutsDownOnCancel(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_URL", "file:server-test?mode=memory&cache=shared")
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "0")
	t.Setenv("LOG_LEVEL", "8")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, run(ctx))
}

func TestRun_InvalidDatabaseURL(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_URL", "mysql://localhost/ledger")
	t.Setenv("LOG_LEVEL", "8")

	err := run(context.Background())
	assert.ErrorContains(t, err, "failed to initialize dependencies")
}
