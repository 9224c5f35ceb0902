package customer

import (
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/webapi/account"
)

// RegisterRequest represents the request body for registering a customer.
type RegisterRequest struct {
	FirstName      *string `json:"first_name" validate:"required,notblank"`
	Surname        *string `json:"surname" validate:"required,notblank"`
	Identification *string `json:"identification" validate:"required,notblank,max=20"`
}

// CustomerDTO is the API representation of a customer.
type CustomerDTO struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Identification string `json:"identification"`
}

// CustomerDetailDTO is a customer together with its accounts.
type CustomerDetailDTO struct {
	CustomerDTO
	Accounts []*account.AccountDTO `json:"accounts"`
}

// CustomerListDTO is the body of the customer list endpoint.
type CustomerListDTO struct {
	Customers []*CustomerDTO `json:"customers"`
}

// ToCustomerDTO maps a dto.CustomerRead to a CustomerDTO.
func ToCustomerDTO(c *dto.CustomerRead) *CustomerDTO {
	if c == nil {
		return nil
	}
	return &CustomerDTO{
		ID:             c.ID,
		Name:           c.Name,
		Identification: c.Identification,
	}
}

// ToCustomerDetailDTO maps a dto.CustomerDetail to a CustomerDetailDTO.
func ToCustomerDetailDTO(d *dto.CustomerDetail) *CustomerDetailDTO {
	out := &CustomerDetailDTO{
		CustomerDTO: *ToCustomerDTO(&d.CustomerRead),
		Accounts:    make([]*account.AccountDTO, 0, len(d.Accounts)),
	}
	for _, a := range d.Accounts {
		out.Accounts = append(out.Accounts, account.ToAccountDTO(a))
	}
	return out
}
