package customer

import (
	"context"

	"github.com/amirasaad/ledger/pkg/dto"
)

// Repository defines data access for customers. Customers are never updated
// or deleted.
type Repository interface {
	// FindByIdentity returns the customer with the given normalized name and
	// identification, or domain.ErrNotFound.
	FindByIdentity(ctx context.Context, name, identification string) (*dto.CustomerRead, error)

	// Create inserts a customer. A duplicate identity yields domain.ErrAlreadyExists.
	Create(ctx context.Context, create dto.CustomerCreate) (*dto.CustomerRead, error)

	// Get retrieves a customer by id.
	Get(ctx context.Context, id uint) (*dto.CustomerRead, error)

	// List returns every customer ordered by id.
	List(ctx context.Context) ([]*dto.CustomerRead, error)
}
