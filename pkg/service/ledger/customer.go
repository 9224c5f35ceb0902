package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/customer"
	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/repository"
	accountrepo "github.com/amirasaad/ledger/pkg/repository/account"
	customerrepo "github.com/amirasaad/ledger/pkg/repository/customer"
)

// RegisterCustomer adds a customer named firstName surname. When a customer
// with the same normalized name and identification already exists, that
// record is returned together with domain.ErrCustomerAlreadyExists.
func (s *Service) RegisterCustomer(
	ctx context.Context,
	firstName, surname, identification string,
) (c *dto.CustomerRead, err error) {
	id := customer.NewIdentity(firstName, surname, identification)
	logger := s.logger.With("operation", "register_customer", "name", id.Name)

	if err := requireIdentity(firstName, surname, identification); err != nil {
		return nil, err
	}
	if err := validateIdentity(id); err != nil {
		return nil, err
	}

	var existing *dto.CustomerRead
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[customerrepo.Repository](uow)
		if err != nil {
			return err
		}
		found, err := repo.FindByIdentity(ctx, id.Name, id.Identification)
		switch {
		case err == nil:
			existing = found
			return nil
		case !errors.Is(err, domain.ErrNotFound):
			return err
		}
		c, err = repo.Create(ctx, dto.CustomerCreate{
			Name:           id.Name,
			Identification: id.Identification,
		})
		return err
	})

	if errors.Is(err, domain.ErrAlreadyExists) {
		// lost an insert race; the winner's row is committed
		existing, err = s.findCustomer(ctx, id)
	}
	if err != nil {
		logger.Error("register customer failed", "error", err)
		return nil, classify(err)
	}
	if existing != nil {
		logger.Info("customer already exists", "customer_id", existing.ID)
		return existing, domain.ErrCustomerAlreadyExists
	}

	logger.Info("customer registered", "customer_id", c.ID)
	s.emit(ctx, events.CustomerRegistered{
		CustomerID:     c.ID,
		Name:           c.Name,
		Identification: c.Identification,
	})
	return c, nil
}

// ListCustomers returns every customer ordered by id.
func (s *Service) ListCustomers(ctx context.Context) (cs []*dto.CustomerRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[customerrepo.Repository](uow)
		if err != nil {
			return err
		}
		cs, err = repo.List(ctx)
		return err
	})
	if err != nil {
		return nil, classify(err)
	}
	return cs, nil
}

// GetCustomer returns a customer together with its accounts.
func (s *Service) GetCustomer(ctx context.Context, id uint) (d *dto.CustomerDetail, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		customers, err := repository.Get[customerrepo.Repository](uow)
		if err != nil {
			return err
		}
		accounts, err := repository.Get[accountrepo.Repository](uow)
		if err != nil {
			return err
		}
		c, err := customers.Get(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrCustomerNotFound
		}
		if err != nil {
			return err
		}
		accts, err := accounts.ListByCustomer(ctx, id)
		if err != nil {
			return err
		}
		d = &dto.CustomerDetail{CustomerRead: *c, Accounts: accts}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return d, nil
}

func (s *Service) findCustomer(ctx context.Context, id customer.Identity) (c *dto.CustomerRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[customerrepo.Repository](uow)
		if err != nil {
			return err
		}
		c, err = repo.FindByIdentity(ctx, id.Name, id.Identification)
		return err
	})
	return c, err
}

// requireIdentity reports the identity inputs that are empty or blank.
func requireIdentity(firstName, surname, identification string) error {
	inputs := []struct{ field, value string }{
		{"first_name", firstName},
		{"surname", surname},
		{"identification", identification},
	}
	var fields []domain.FieldError
	for _, in := range inputs {
		if strings.TrimSpace(in.value) == "" {
			fields = append(fields, domain.FieldError{Field: in.field, Reason: domain.ReasonRequired})
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return domain.NewValidationError(nil, fields...)
}

func validateIdentity(id customer.Identity) error {
	fields := id.Validate()
	if len(fields) == 0 {
		return nil
	}
	errs := make([]domain.FieldError, 0, len(fields))
	for _, f := range fields {
		limit := customer.MaxNameLen
		if f == "identification" {
			limit = customer.MaxIdentificationLen
		}
		errs = append(errs, domain.FieldError{
			Field:  f,
			Reason: fmt.Sprintf("must be at most %d characters", limit),
		})
	}
	return domain.NewValidationError(nil, errs...)
}
