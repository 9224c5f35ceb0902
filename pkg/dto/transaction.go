package dto

import (
	"github.com/shopspring/decimal"
)

// TransactionRead is the read model of a transfer record.
type TransactionRead struct {
	UUID          string
	AccountIDFrom uint
	AccountIDTo   uint
	Amount        decimal.Decimal
	Timestamp     string // RFC3339Nano, UTC
}

// TransactionCreate is a DTO for appending a transfer record.
type TransactionCreate struct {
	UUID          string
	AccountIDFrom uint
	AccountIDTo   uint
	Amount        decimal.Decimal
	Timestamp     string
}
