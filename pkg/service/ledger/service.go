// Package ledger implements the transaction-processing core: customer
// registration, account opening, balance queries, atomic transfers and
// transaction history. Every operation runs inside a UnitOfWork and emits a
// domain event after a successful commit.
package ledger

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/google/uuid"
)

// Service provides the ledger operations.
type Service struct {
	uow            repository.UnitOfWork
	bus            eventbus.Bus
	logger         *slog.Logger
	allowOverdraft bool
	now            func() time.Time
	newID          func() uuid.UUID
}

// New creates a Service. bus may be nil, in which case no events are emitted.
func New(
	uow repository.UnitOfWork,
	bus eventbus.Bus,
	logger *slog.Logger,
	opts ...Option,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		uow:            uow,
		bus:            bus,
		logger:         logger,
		allowOverdraft: true,
		now:            time.Now,
		newID:          uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AllowOverdraft reports whether transfers may drive a balance below zero.
func (s *Service) AllowOverdraft() bool {
	return s.allowOverdraft
}

// emit publishes evt after a commit. The operation has already succeeded,
// so failures are only logged.
func (s *Service) emit(ctx context.Context, evt eventbus.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Emit(ctx, evt); err != nil {
		s.logger.Warn("failed to emit event", "type", evt.Type(), "error", err)
	}
}

// classify passes taxonomy errors through and reports everything else as a
// storage failure.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrAlreadyExists),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrStorage):
		return err
	default:
		return domain.StorageError(err)
	}
}
