package ledger

import (
	"context"
	"errors"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/customer"
	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/repository"
	accountrepo "github.com/amirasaad/ledger/pkg/repository/account"
	customerrepo "github.com/amirasaad/ledger/pkg/repository/customer"
	"github.com/shopspring/decimal"
)

// OpenAccount creates an account holding deposit for the customer identified
// by name and identification. The customer must already be registered.
func (s *Service) OpenAccount(
	ctx context.Context,
	firstName, surname, identification string,
	deposit decimal.Decimal,
) (a *dto.OpenedAccount, err error) {
	id := customer.NewIdentity(firstName, surname, identification)
	logger := s.logger.With("operation", "open_account", "name", id.Name)

	if err := requireIdentity(firstName, surname, identification); err != nil {
		return nil, err
	}
	if err := account.ValidateDeposit(deposit); err != nil {
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		customers, err := repository.Get[customerrepo.Repository](uow)
		if err != nil {
			return err
		}
		accounts, err := repository.Get[accountrepo.Repository](uow)
		if err != nil {
			return err
		}
		c, err := customers.FindByIdentity(ctx, id.Name, id.Identification)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrCustomerNotFound
		}
		if err != nil {
			return err
		}
		created, err := accounts.Create(ctx, dto.AccountCreate{
			CustomerID: c.ID,
			Balance:    deposit,
		})
		if err != nil {
			return err
		}
		a = &dto.OpenedAccount{AccountRead: *created, Name: c.Name}
		return nil
	})
	if err != nil {
		logger.Error("open account failed", "error", err)
		return nil, classify(err)
	}

	logger.Info("account opened", "account_id", a.ID, "customer_id", a.CustomerID)
	s.emit(ctx, events.AccountOpened{
		AccountID:      a.ID,
		CustomerID:     a.CustomerID,
		InitialDeposit: a.Balance,
	})
	return a, nil
}

// GetAccount returns the account with the given id.
func (s *Service) GetAccount(ctx context.Context, id uint) (a *dto.AccountRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[accountrepo.Repository](uow)
		if err != nil {
			return err
		}
		a, err = repo.Get(ctx, id)
		return accountErr(err)
	})
	if err != nil {
		return nil, classify(err)
	}
	return a, nil
}

// GetBalance returns the current balance of an account.
func (s *Service) GetBalance(ctx context.Context, id uint) (decimal.Decimal, error) {
	a, err := s.GetAccount(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	return a.Balance, nil
}

func accountErr(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrAccountNotFound
	}
	return err
}
