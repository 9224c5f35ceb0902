// Package app assembles the ledger services from their dependencies.
package app

import (
	"errors"
	"io"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/cache"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/amirasaad/ledger/pkg/idempotency"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/service/ledger"
)

// Deps contains all the dependencies needed to build an App
type Deps struct {
	Uow      repository.UnitOfWork
	EventBus eventbus.Bus
	Cache    cache.Cache
	Logger   *slog.Logger
	// Closers are released in reverse order by Close.
	Closers []io.Closer
}

// Close releases every resource held by the dependencies.
func (d *Deps) Close() error {
	var errs []error
	for i := len(d.Closers) - 1; i >= 0; i-- {
		if err := d.Closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	d.Closers = nil
	return errors.Join(errs...)
}

type App struct {
	Deps          *Deps
	Config        *config.App
	LedgerService *ledger.Service
	Idempotency   *idempotency.Guard
}

func New(deps *Deps, cfg *config.App) *App {
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	app.setupEventBus()

	allowOverdraft := true
	if cfg.Ledger != nil {
		allowOverdraft = cfg.Ledger.AllowOverdraft
	}
	app.LedgerService = ledger.New(
		deps.Uow,
		deps.EventBus,
		deps.Logger,
		ledger.WithOverdraft(allowOverdraft),
	)

	if deps.Cache != nil {
		app.Idempotency = idempotency.NewGuard(deps.Cache, "idempotency:", app.idempotencyTTL(), deps.Logger)
	}
	return app
}
