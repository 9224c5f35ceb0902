package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute(t *testing.T) {
	svc, _, _ := testutils.NewTestService(t)
	ctx := context.Background()
	exec := func(args ...string) (string, error) {
		var out bytes.Buffer
		err := execute(ctx, svc, args, &out)
		return out.String(), err
	}

	out, err := exec("seed")
	require.NoError(t, err)
	assert.Contains(t, out, "added   1 Arisha Barron aaaaa")

	out, err = exec("seed")
	require.NoError(t, err)
	assert.Contains(t, out, "0 of 4 customers added")

	out, err = exec("register", "thomas", "anderson", "abc")
	require.NoError(t, err)
	assert.Contains(t, out, "Name=Thomas Anderson")

	out, err = exec("customers")
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(out, "\n"))

	out, err = exec("open", "thomas", "anderson", "abc", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, "Balance=1000.00")
	out, err = exec("open", "arisha", "barron", "aaaaa", "999")
	require.NoError(t, err)
	assert.Contains(t, out, "ID=2")

	out, err = exec("transfer", "1", "2", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Transferred 10.00 from 1 to 2")

	out, err = exec("balance", "1")
	require.NoError(t, err)
	assert.Equal(t, "Account 1 balance: 990.00\n", out)

	out, err = exec("history", "2")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "\n"))

	_, err = exec("transfer", "1", "2", "-10")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = exec("balance", "999")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	_, err = exec("balance", "x")
	assert.Error(t, err)
	_, err = exec("open", "nobody", "here", "zzz", "1")
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
	_, err = exec("bogus")
	assert.ErrorContains(t, err, "unknown command")
}

func TestRun_Usage(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), nil, &out))
	assert.Contains(t, out.String(), "Usage: cli")
}
