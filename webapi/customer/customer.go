package customer

import (
	"errors"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/service/ledger"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers HTTP routes for customer operations.
//
// Routes:
//   - GET    /customers      : List every customer.
//   - POST   /customers      : Register a customer.
//   - GET    /customers/:id  : Retrieve a customer and its accounts.
func Routes(app *fiber.App, svc *ledger.Service) {
	app.Get("/customers", ListCustomers(svc))
	app.Post("/customers", RegisterCustomer(svc))
	app.Get("/customers/:id", GetCustomer(svc))
}

// ListCustomers returns a Fiber handler listing every customer in id order.
func ListCustomers(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		customers, err := svc.ListCustomers(c.UserContext())
		if err != nil {
			log.Errorf("Failed to list customers: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to list customers", err)
		}
		out := CustomerListDTO{Customers: make([]*CustomerDTO, 0, len(customers))}
		for _, cu := range customers {
			out.Customers = append(out.Customers, ToCustomerDTO(cu))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Customers fetched", out)
	}
}

// RegisterCustomer returns a Fiber handler that registers a customer from
// first_name, surname and identification. A duplicate is rejected with 400
// and the existing record under errors.
func RegisterCustomer(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RegisterRequest](c, "add new customer")
		if input == nil {
			return err
		}
		cu, err := svc.RegisterCustomer(
			c.UserContext(),
			*input.FirstName,
			*input.Surname,
			*input.Identification,
		)
		if errors.Is(err, domain.ErrCustomerAlreadyExists) {
			return common.ProblemDetailsJSON(c, "Customer already exists", err, ToCustomerDTO(cu))
		}
		if err != nil {
			log.Errorf("Failed to register customer: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to register customer", err)
		}
		log.Infof("Customer registered: %d", cu.ID)
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "customer added", ToCustomerDTO(cu))
	}
}

// GetCustomer returns a Fiber handler retrieving one customer and its accounts.
func GetCustomer(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := common.ParseID(c, "id")
		if !ok {
			return common.ProblemDetailsJSON(c, "Customer not found", domain.ErrCustomerNotFound)
		}
		d, err := svc.GetCustomer(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to fetch customer", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Customer fetched", ToCustomerDetailDTO(d))
	}
}
