package account

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TimestampLayout is the format of Transaction.Timestamp.
const TimestampLayout = time.RFC3339Nano

// Transaction is the immutable record of one transfer.
type Transaction struct {
	UUID          uuid.UUID
	AccountIDFrom uint
	AccountIDTo   uint
	Amount        decimal.Decimal
	Timestamp     string
}

// NewTransaction records a transfer of amount from one account to another at
// the given instant.
func NewTransaction(id uuid.UUID, from, to uint, amount decimal.Decimal, at time.Time) (*Transaction, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	return &Transaction{
		UUID:          id,
		AccountIDFrom: from,
		AccountIDTo:   to,
		Amount:        amount,
		Timestamp:     at.UTC().Format(TimestampLayout),
	}, nil
}
