package account

import (
	"errors"
	"fmt"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/service/ledger"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/shopspring/decimal"
)

// Routes registers HTTP routes for account operations.
//
// Routes:
//   - POST   /accounts     : Open an account for a registered customer.
//   - GET    /account/:id  : Retrieve the balance of an account.
func Routes(app *fiber.App, svc *ledger.Service) {
	app.Post("/accounts", OpenAccount(svc))
	app.Get("/account/:id", GetAccount(svc))
}

// OpenAccount returns a Fiber handler that opens an account holding deposit
// for the customer named by first_name, surname and identification.
func OpenAccount(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[OpenAccountRequest](c, "add new account")
		if input == nil {
			return err
		}
		deposit, err := decimal.NewFromString(input.Deposit.String())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid deposit",
				domain.NewValidationError(nil, domain.FieldError{Field: "deposit", Reason: "must be a number"}))
		}
		a, err := svc.OpenAccount(
			c.UserContext(),
			*input.FirstName,
			*input.Surname,
			*input.Identification,
			deposit,
		)
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return common.ProblemDetailsJSON(c, "Customer not found", err, fiber.StatusBadRequest)
		}
		if err != nil {
			log.Errorf("Failed to open account: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to open account", err)
		}
		log.Infof("Account opened: %d", a.ID)
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "New account added", ToOpenedAccountDTO(a))
	}
}

// GetAccount returns a Fiber handler retrieving the balance of one account.
func GetAccount(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := common.ParseID(c, "id")
		if !ok {
			return common.ProblemDetailsJSON(c, "Account not found", domain.ErrAccountNotFound)
		}
		balance, err := svc.GetBalance(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to fetch account", err)
		}
		return common.SuccessResponseJSON(
			c,
			fiber.StatusOK,
			fmt.Sprintf("account %d retrieved", id),
			BalanceDTO{Balance: DecimalJSON(balance)},
		)
	}
}
