package transaction

import (
	"context"

	"github.com/amirasaad/ledger/pkg/dto"
)

// Repository defines data access for the append-only transaction log.
type Repository interface {
	// Create appends a transaction record.
	Create(ctx context.Context, create dto.TransactionCreate) (*dto.TransactionRead, error)

	// Get retrieves a transaction by its uuid.
	Get(ctx context.Context, uuid string) (*dto.TransactionRead, error)

	// ListByAccount returns every transaction where accountID is the source
	// or the destination, in creation order. It never returns nil.
	ListByAccount(ctx context.Context, accountID uint) ([]*dto.TransactionRead, error)
}
