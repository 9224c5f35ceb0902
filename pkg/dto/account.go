package dto

import (
	"github.com/shopspring/decimal"
)

// AccountRead is the read model of an account.
type AccountRead struct {
	ID         uint
	CustomerID uint
	Balance    decimal.Decimal
}

// AccountCreate is a DTO for opening a new account.
type AccountCreate struct {
	CustomerID uint
	Balance    decimal.Decimal // Initial deposit
}

// OpenedAccount is an account together with its owner's name, as returned by
// the open-account operation.
type OpenedAccount struct {
	AccountRead
	Name string
}

// CustomerDetail is a customer together with its accounts.
type CustomerDetail struct {
	CustomerRead
	Accounts []*AccountRead
}
