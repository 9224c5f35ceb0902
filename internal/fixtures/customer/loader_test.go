package customer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCustomersJSON_Embedded(t *testing.T) {
	seeds, err := LoadCustomersJSON("")
	require.NoError(t, err)
	require.NotEmpty(t, seeds)
	assert.Equal(t, Seed{FirstName: "Arisha", Surname: "Barron", Identification: "aaaaa"}, seeds[0])
	assert.Equal(t, "bbbbb", seeds[1].Identification)
}

func TestLoadCustomersJSON_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customers.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":1,"name":"thomas anderson"},{"id":2,"name":"Neo"}]`), 0o600))

	seeds, err := LoadCustomersJSON(path)
	require.NoError(t, err)
	require.Len(t, seeds, 2)
	assert.Equal(t, "thomas", seeds[0].FirstName)
	assert.Equal(t, "anderson", seeds[0].Surname)
	assert.Equal(t, Seed{FirstName: "Neo", Identification: "bbbbb"}, seeds[1])
}

func TestLoadCustomersJSON_Errors(t *testing.T) {
	_, err := LoadCustomersJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = parseCustomers(strings.NewReader(`{"not":"a list"}`))
	assert.Error(t, err)

	many := "[" + strings.TrimSuffix(strings.Repeat(`{"name":"a b"},`, 27), ",") + "]"
	_, err = parseCustomers(strings.NewReader(many))
	assert.Error(t, err)
}
