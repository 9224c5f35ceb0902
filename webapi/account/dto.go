package account

import (
	"encoding/json"

	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/shopspring/decimal"
)

// OpenAccountRequest represents the request body for opening an account.
type OpenAccountRequest struct {
	FirstName      *string      `json:"first_name" validate:"required,notblank"`
	Surname        *string      `json:"surname" validate:"required,notblank"`
	Identification *string      `json:"identification" validate:"required,notblank"`
	Deposit        *json.Number `json:"deposit" validate:"required"`
}

// AccountDTO is the API representation of an account.
type AccountDTO struct {
	ID         uint        `json:"id"`
	Balance    json.Number `json:"balance"`
	CustomerID uint        `json:"customer_id"`
}

// OpenedAccountDTO is an account together with its owner's name.
type OpenedAccountDTO struct {
	AccountDTO
	Name string `json:"name"`
}

// BalanceDTO is the body of the account endpoint.
type BalanceDTO struct {
	Balance json.Number `json:"balance"`
}

// DecimalJSON renders d as a JSON number literal carrying every digit.
func DecimalJSON(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// ToAccountDTO maps a dto.AccountRead to an AccountDTO.
func ToAccountDTO(a *dto.AccountRead) *AccountDTO {
	if a == nil {
		return nil
	}
	return &AccountDTO{
		ID:         a.ID,
		Balance:    DecimalJSON(a.Balance),
		CustomerID: a.CustomerID,
	}
}

// ToOpenedAccountDTO maps a dto.OpenedAccount to an OpenedAccountDTO.
func ToOpenedAccountDTO(a *dto.OpenedAccount) *OpenedAccountDTO {
	return &OpenedAccountDTO{
		AccountDTO: *ToAccountDTO(&a.AccountRead),
		Name:       a.Name,
	}
}
