package transaction

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/idempotency"
	"github.com/amirasaad/ledger/pkg/service/ledger"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/shopspring/decimal"
)

const (
	// HeaderIdempotencyKey carries the client's key for a retry-safe transfer.
	HeaderIdempotencyKey = "Idempotency-Key"
	// HeaderIdempotentReplayed is set on responses served from an earlier attempt.
	HeaderIdempotentReplayed = "Idempotent-Replayed"
)

// Routes registers HTTP routes for transactions. guard may be nil, in which
// case Idempotency-Key headers are ignored.
//
// Routes:
//   - POST   /transactions              : Transfer between two accounts.
//   - GET    /account/:id/transactions  : List the transactions of an account.
func Routes(app *fiber.App, svc *ledger.Service, guard *idempotency.Guard) {
	app.Post("/transactions", Transfer(svc, guard))
	app.Get("/account/:id/transactions", GetTransactions(svc))
}

// Transfer returns a Fiber handler that moves amount from account_id_from to
// account_id_to. Requests repeating an Idempotency-Key get the first
// successful response back instead of a second transfer.
func Transfer(svc *ledger.Service, guard *idempotency.Guard) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TransferRequest](c, "process transaction")
		if input == nil {
			return err
		}
		from, to, amount, ve := parseTransfer(input)
		if ve != nil {
			return common.ProblemDetailsJSON(c, "Validation failed", ve)
		}

		run := func() ([]byte, error) {
			tx, err := svc.Transfer(c.UserContext(), from, to, amount)
			if err != nil {
				return nil, err
			}
			return json.Marshal(common.Response{
				Status:  fiber.StatusCreated,
				Message: "Transaction processed",
				Data:    ToTransactionDTO(tx),
			})
		}

		var (
			body     []byte
			replayed bool
		)
		if guard != nil {
			body, replayed, err = guard.Do(c.UserContext(), strings.Clone(c.Get(HeaderIdempotencyKey)), run)
		} else {
			body, err = run()
		}
		if errors.Is(err, domain.ErrAccountNotFound) {
			return common.ProblemDetailsJSON(c, "Account not found", err, "Check account id", fiber.StatusBadRequest)
		}
		if err != nil {
			log.Errorf("Failed to transfer: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to transfer", err)
		}
		if replayed {
			c.Set(HeaderIdempotentReplayed, "true")
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Status(fiber.StatusCreated).Send(body)
	}
}

// GetTransactions returns a Fiber handler listing every transaction in which
// the account is the source or the destination, oldest first.
func GetTransactions(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := common.ParseID(c, "id")
		if !ok {
			return common.ProblemDetailsJSON(c, "Account not found", domain.ErrAccountNotFound, "Check account id")
		}
		txs, err := svc.GetTransactionHistory(c.UserContext(), id)
		if errors.Is(err, domain.ErrAccountNotFound) {
			return common.ProblemDetailsJSON(c, "Account not found", err, "Check account id")
		}
		if err != nil {
			log.Errorf("Failed to list transactions: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to list transactions", err)
		}
		out := TransactionListDTO{Transactions: make([]*TransactionDTO, 0, len(txs))}
		for _, tx := range txs {
			out.Transactions = append(out.Transactions, ToTransactionDTO(tx))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions fetched", out)
	}
}

func parseTransfer(in *TransferRequest) (from, to uint, amount decimal.Decimal, err error) {
	var fields []domain.FieldError
	parseID := func(field string, n *json.Number) uint {
		id, perr := strconv.ParseUint(n.String(), 10, 64)
		if perr != nil || id == 0 {
			fields = append(fields, domain.FieldError{Field: field, Reason: "must be a positive integer"})
		}
		return uint(id)
	}
	from = parseID("account_id_from", in.AccountIDFrom)
	to = parseID("account_id_to", in.AccountIDTo)
	amount, aerr := decimal.NewFromString(in.Amount.String())
	if aerr != nil {
		fields = append(fields, domain.FieldError{Field: "amount", Reason: "must be a number"})
	}
	if len(fields) > 0 {
		return 0, 0, decimal.Zero, domain.NewValidationError(nil, fields...)
	}
	return from, to, amount, nil
}
