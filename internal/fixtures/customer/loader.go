// Package customer loads the seed customers used to initialise a fresh ledger.
package customer

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed customers.json
var customersJSON string

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Seed is one customer to register. Identification is derived from the row
// position: "aaaaa" for the first, "bbbbb" for the second and so on.
type Seed struct {
	FirstName      string
	Surname        string
	Identification string
}

type row struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// LoadCustomersJSON loads seed customers from a JSON file, or from the
// embedded fixture when path is empty.
func LoadCustomersJSON(path string) ([]Seed, error) {
	var r io.Reader
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		defer f.Close() //nolint:errcheck
		r = f
	} else {
		r = strings.NewReader(customersJSON)
	}
	return parseCustomers(r)
}

func parseCustomers(r io.Reader) ([]Seed, error) {
	var rows []row
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("invalid customers file: %w", err)
	}
	if len(rows) > len(alphabet) {
		return nil, errors.New("too many customers: at most 26 can be seeded")
	}

	seeds := make([]Seed, 0, len(rows))
	for i, rw := range rows {
		first, surname, _ := strings.Cut(strings.TrimSpace(rw.Name), " ")
		seeds = append(seeds, Seed{
			FirstName:      first,
			Surname:        strings.TrimSpace(surname),
			Identification: strings.Repeat(string(alphabet[i]), 5),
		})
	}
	return seeds, nil
}
