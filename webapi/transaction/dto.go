package transaction

import (
	"encoding/json"

	"github.com/amirasaad/ledger/pkg/dto"
	accountweb "github.com/amirasaad/ledger/webapi/account"
)

// TransferRequest represents the request body for a transfer between accounts.
type TransferRequest struct {
	AccountIDFrom *json.Number `json:"account_id_from" validate:"required"`
	AccountIDTo   *json.Number `json:"account_id_to" validate:"required"`
	Amount        *json.Number `json:"amount" validate:"required"`
}

// TransactionDTO is the API representation of a transaction.
type TransactionDTO struct {
	UUID          string      `json:"uuid"`
	AccountIDFrom uint        `json:"account_id_from"`
	AccountIDTo   uint        `json:"account_id_to"`
	Amount        json.Number `json:"amount"`
	Timestamp     string      `json:"transaction_timestamp"`
}

// TransactionListDTO is the body of the transaction history endpoint.
type TransactionListDTO struct {
	Transactions []*TransactionDTO `json:"transactions"`
}

// ToTransactionDTO maps a dto.TransactionRead to a TransactionDTO.
func ToTransactionDTO(tx *dto.TransactionRead) *TransactionDTO {
	if tx == nil {
		return nil
	}
	return &TransactionDTO{
		UUID:          tx.UUID,
		AccountIDFrom: tx.AccountIDFrom,
		AccountIDTo:   tx.AccountIDTo,
		Amount:        accountweb.DecimalJSON(tx.Amount),
		Timestamp:     tx.Timestamp,
	}
}
