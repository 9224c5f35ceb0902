package account

import (
	"context"

	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/shopspring/decimal"
)

// Repository defines data access for accounts.
type Repository interface {
	// Get retrieves an account by id, or domain.ErrNotFound.
	Get(ctx context.Context, id uint) (*dto.AccountRead, error)

	// GetForUpdate is Get with a row lock held until the surrounding
	// transaction ends.
	GetForUpdate(ctx context.Context, id uint) (*dto.AccountRead, error)

	// Create inserts an account. A missing customer yields domain.ErrNotFound.
	Create(ctx context.Context, create dto.AccountCreate) (*dto.AccountRead, error)

	// UpdateBalance overwrites the balance of an account.
	UpdateBalance(ctx context.Context, id uint, balance decimal.Decimal) error

	// ListByCustomer lists the accounts owned by a customer, ordered by id.
	ListByCustomer(ctx context.Context, customerID uint) ([]*dto.AccountRead, error)
}
