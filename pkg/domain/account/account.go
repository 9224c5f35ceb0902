// Package account holds the account aggregate and the transfer rules that
// move money between two balances.
package account

import (
	"errors"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/shopspring/decimal"
)

// ErrNilAccount is returned when a nil account is passed to Transfer.
var ErrNilAccount = errors.New("nil account")

// Account is a customer's account. Balance is the only mutable field and may
// go negative when overdraft is allowed.
type Account struct {
	ID         uint
	CustomerID uint
	Balance    decimal.Decimal
}

// Scale is the number of decimal places a stored amount keeps.
const Scale = 4

// maxMagnitude is the exclusive bound of a numeric(20,4) value.
var maxMagnitude = decimal.New(1, 16)

// ValidateAmount rejects amounts that are zero or negative, or that the store
// cannot hold exactly.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fieldError("amount", domain.ErrInvalidAmount)
	}
	return checkStorable("amount", amount)
}

// ValidateDeposit rejects a negative opening balance or one the store cannot
// hold exactly.
func ValidateDeposit(deposit decimal.Decimal) error {
	if deposit.IsNegative() {
		return domain.NewValidationError(nil, domain.FieldError{
			Field:  "deposit",
			Reason: "must not be negative",
		})
	}
	return checkStorable("deposit", deposit)
}

func checkStorable(field string, d decimal.Decimal) error {
	if !d.Equal(d.Truncate(Scale)) {
		return fieldError(field, domain.ErrAmountPrecision)
	}
	if d.Abs().GreaterThanOrEqual(maxMagnitude) {
		return fieldError(field, domain.ErrAmountOutOfRange)
	}
	return nil
}

func fieldError(field string, cause error) error {
	return domain.NewValidationError(cause, domain.FieldError{
		Field:  field,
		Reason: cause.Error(),
	})
}

// Debit subtracts amount from the balance. Without overdraft the resulting
// balance must stay at or above zero.
func (a *Account) Debit(amount decimal.Decimal, allowOverdraft bool) error {
	next := a.Balance.Sub(amount)
	if !allowOverdraft && next.IsNegative() {
		return domain.ErrInsufficientFunds
	}
	a.Balance = next
	return nil
}

// Credit adds amount to the balance.
func (a *Account) Credit(amount decimal.Decimal) {
	a.Balance = a.Balance.Add(amount)
}

// Transfer debits from and credits to by amount. Both accounts are left
// untouched when it returns an error. from and to may be the same account.
func Transfer(from, to *Account, amount decimal.Decimal, allowOverdraft bool) error {
	if from == nil || to == nil {
		return ErrNilAccount
	}
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if from == to || from.ID == to.ID {
		// net zero; only the overdraft rule can still reject it
		if !allowOverdraft && from.Balance.Sub(amount).IsNegative() {
			return domain.ErrInsufficientFunds
		}
		return nil
	}
	// both resulting balances must stay storable
	if err := checkStorable("amount", from.Balance.Sub(amount)); err != nil {
		return err
	}
	if err := checkStorable("amount", to.Balance.Add(amount)); err != nil {
		return err
	}
	if err := from.Debit(amount, allowOverdraft); err != nil {
		return err
	}
	to.Credit(amount)
	return nil
}
