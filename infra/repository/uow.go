package repository

import (
	"context"
	"fmt"
	"reflect"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/repository/account"
	"github.com/amirasaad/ledger/pkg/repository/customer"
	"github.com/amirasaad/ledger/pkg/repository/transaction"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one abstraction.
// Repositories obtained from the UoW passed into Do share its transaction;
// outside Do they run on the plain connection pool.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	repoRegistry map[reflect.Type]func(*gorm.DB) any
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{
		db: db,
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			reflect.TypeOf((*customer.Repository)(nil)).Elem():    func(db *gorm.DB) any { return NewCustomerRepository(db) },
			reflect.TypeOf((*account.Repository)(nil)).Elem():     func(db *gorm.DB) any { return NewAccountRepository(db) },
			reflect.TypeOf((*transaction.Repository)(nil)).Elem(): func(db *gorm.DB) any { return NewTransactionRepository(db) },
		},
	}
}

// Do runs fn in a transaction boundary, providing a UoW with repository access.
// Calling Do on the UoW handed to fn nests the work in a savepoint.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	var fnErr error
	err := u.session().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(&UoW{db: u.db, tx: tx, repoRegistry: u.repoRegistry})
		return fnErr
	})
	if err != nil && fnErr == nil {
		// begin or commit failed
		return domain.StorageError(err)
	}
	return err
}

// GetRepository returns the repository registered for repoType, bound to the
// current session. repoType is a nil pointer to the repository interface
// or its reflect.Type.
func (u *UoW) GetRepository(repoType any) (any, error) {
	key, err := repositoryKey(repoType)
	if err != nil {
		return nil, err
	}
	constructor, ok := u.repoRegistry[key]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %v", key)
	}
	return constructor(u.session()), nil
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func repositoryKey(repoType any) (reflect.Type, error) {
	if t, ok := repoType.(reflect.Type); ok {
		return t, nil
	}
	t := reflect.TypeOf(repoType)
	if t == nil {
		return nil, fmt.Errorf("unsupported repository type: nil")
	}
	if t.Kind() == reflect.Pointer {
		return t.Elem(), nil
	}
	return t, nil
}

var _ repository.UnitOfWork = (*UoW)(nil)
