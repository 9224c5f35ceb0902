// Package repository defines the ledger store contracts: a unit of work that
// scopes a single database transaction and the typed repositories bound to it.
package repository

import (
	"context"
	"fmt"
)

// UnitOfWork defines the contract for transactional work and type-safe repository access.
//
// Do runs fn inside one transaction: it commits when fn returns nil and rolls
// back when fn returns an error or panics. GetRepository returns a repository
// bound to the same session, keyed by a nil pointer to the repository
// interface:
//
//	repoAny, err := uow.GetRepository((*customer.Repository)(nil))
//	repo := repoAny.(customer.Repository)
type UnitOfWork interface {
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error
	GetRepository(repoType any) (any, error)
}

// Get resolves the repository of type T from uow.
func Get[T any](uow UnitOfWork) (T, error) {
	var zero T
	repoAny, err := uow.GetRepository((*T)(nil))
	if err != nil {
		return zero, err
	}
	repo, ok := repoAny.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected repository type %T", repoAny)
	}
	return repo, nil
}
