// Package events defines the domain events emitted by the ledger after a
// state change has been committed.
package events

import (
	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/shopspring/decimal"
)

const (
	CustomerRegisteredType = "customer.registered"
	AccountOpenedType      = "account.opened"
	TransferCompletedType  = "transfer.completed"
)

// CustomerRegistered is emitted once per newly inserted customer.
type CustomerRegistered struct {
	CustomerID     uint   `json:"customer_id"`
	Name           string `json:"name"`
	Identification string `json:"identification"`
}

// AccountOpened is emitted after an account is created.
type AccountOpened struct {
	AccountID      uint            `json:"account_id"`
	CustomerID     uint            `json:"customer_id"`
	InitialDeposit decimal.Decimal `json:"initial_deposit"`
}

// TransferCompleted is emitted after both balances and the transaction record
// have been committed.
type TransferCompleted struct {
	TransactionID string          `json:"uuid"`
	AccountIDFrom uint            `json:"account_id_from"`
	AccountIDTo   uint            `json:"account_id_to"`
	Amount        decimal.Decimal `json:"amount"`
	Timestamp     string          `json:"transaction_timestamp"`
}

func (CustomerRegistered) Type() string { return CustomerRegisteredType }
func (AccountOpened) Type() string      { return AccountOpenedType }
func (TransferCompleted) Type() string  { return TransferCompletedType }

// EventTypes maps each event type to a constructor, used by transports that
// decode events from the wire.
var EventTypes = map[string]func() eventbus.Event{
	CustomerRegisteredType: func() eventbus.Event { return &CustomerRegistered{} },
	AccountOpenedType:      func() eventbus.Event { return &AccountOpened{} },
	TransferCompletedType:  func() eventbus.Event { return &TransferCompleted{} },
}
