package ledger

import (
	"context"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/repository"
	accountrepo "github.com/amirasaad/ledger/pkg/repository/account"
	transactionrepo "github.com/amirasaad/ledger/pkg/repository/transaction"
	"github.com/shopspring/decimal"
)

// Transfer moves amount from one account to another and records the move.
// Both balance updates and the record commit together or not at all.
func (s *Service) Transfer(
	ctx context.Context,
	from, to uint,
	amount decimal.Decimal,
) (tx *dto.TransactionRead, err error) {
	logger := s.logger.With(
		"operation", "transfer",
		"from", from,
		"to", to,
		"amount", amount.String(),
	)

	if err := account.ValidateAmount(amount); err != nil {
		logger.Warn("invalid transfer amount")
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := repository.Get[accountrepo.Repository](uow)
		if err != nil {
			return err
		}
		transactions, err := repository.Get[transactionrepo.Repository](uow)
		if err != nil {
			return err
		}

		src, dst, err := lockPair(ctx, accounts, from, to)
		if err != nil {
			return err
		}
		if err := account.Transfer(src, dst, amount, s.allowOverdraft); err != nil {
			return err
		}
		if src != dst {
			if err := accounts.UpdateBalance(ctx, src.ID, src.Balance); err != nil {
				return accountErr(err)
			}
			if err := accounts.UpdateBalance(ctx, dst.ID, dst.Balance); err != nil {
				return accountErr(err)
			}
		}

		record, err := account.NewTransaction(s.newID(), from, to, amount, s.now())
		if err != nil {
			return err
		}
		tx, err = transactions.Create(ctx, dto.TransactionCreate{
			UUID:          record.UUID.String(),
			AccountIDFrom: record.AccountIDFrom,
			AccountIDTo:   record.AccountIDTo,
			Amount:        record.Amount,
			Timestamp:     record.Timestamp,
		})
		return accountErr(err)
	})
	if err != nil {
		logger.Error("transfer failed", "error", err)
		return nil, classify(err)
	}

	logger.Info("transfer completed", "uuid", tx.UUID)
	s.emit(ctx, events.TransferCompleted{
		TransactionID: tx.UUID,
		AccountIDFrom: tx.AccountIDFrom,
		AccountIDTo:   tx.AccountIDTo,
		Amount:        tx.Amount,
		Timestamp:     tx.Timestamp,
	})
	return tx, nil
}

// GetTransactionHistory returns every transaction in which the account is the
// source or the destination, in creation order.
func (s *Service) GetTransactionHistory(
	ctx context.Context,
	accountID uint,
) (txs []*dto.TransactionRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := repository.Get[accountrepo.Repository](uow)
		if err != nil {
			return err
		}
		transactions, err := repository.Get[transactionrepo.Repository](uow)
		if err != nil {
			return err
		}
		if _, err := accounts.Get(ctx, accountID); err != nil {
			return accountErr(err)
		}
		txs, err = transactions.ListByAccount(ctx, accountID)
		return err
	})
	if err != nil {
		return nil, classify(err)
	}
	if txs == nil {
		txs = []*dto.TransactionRead{}
	}
	return txs, nil
}

// lockPair loads both accounts for update in ascending id order so that
// overlapping transfers always acquire row locks in the same sequence.
func lockPair(
	ctx context.Context,
	repo accountrepo.Repository,
	from, to uint,
) (src, dst *account.Account, err error) {
	if from == to {
		a, err := lockOne(ctx, repo, from)
		if err != nil {
			return nil, nil, err
		}
		return a, a, nil
	}
	first, second := from, to
	if second < first {
		first, second = second, first
	}
	a, err := lockOne(ctx, repo, first)
	if err != nil {
		return nil, nil, err
	}
	b, err := lockOne(ctx, repo, second)
	if err != nil {
		return nil, nil, err
	}
	if a.ID == from {
		return a, b, nil
	}
	return b, a, nil
}

func lockOne(ctx context.Context, repo accountrepo.Repository, id uint) (*account.Account, error) {
	read, err := repo.GetForUpdate(ctx, id)
	if err != nil {
		return nil, accountErr(err)
	}
	return &account.Account{
		ID:         read.ID,
		CustomerID: read.CustomerID,
		Balance:    read.Balance,
	}, nil
}
