// Package initializer builds the process-wide dependencies from configuration.
package initializer

import (
	"fmt"

	"github.com/amirasaad/ledger/infra"
	infracache "github.com/amirasaad/ledger/infra/cache"
	infraeventbus "github.com/amirasaad/ledger/infra/eventbus"
	infrarepo "github.com/amirasaad/ledger/infra/repository"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain/events"
)

// InitializeDependencies initializes all the application dependencies.
// Callers release them with deps.Close.
func InitializeDependencies(cfg *config.App) (
	_ *app.Deps,
	err error,
) {
	deps := &app.Deps{}
	logger := setupLogger(cfg.Log)
	deps.Logger = logger
	defer func() {
		if err != nil {
			_ = deps.Close()
		}
	}()

	// Initialize database
	db, driver, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	deps.Closers = append(deps.Closers, sqlDB)

	if err = infra.Migrate(db, driver); err != nil {
		logger.Error("Failed to migrate database", "driver", driver, "error", err)
		return nil, err
	}
	logger.Info("Database ready", "driver", driver)

	// Initialize unit of work
	deps.Uow = infrarepo.NewUoW(db)

	// Redis backs both the event bus and the idempotency cache when configured
	if cfg.Redis != nil && cfg.Redis.URL != "" {
		client, cerr := infra.NewRedisClient(cfg.Redis)
		if cerr != nil {
			return nil, cerr
		}
		deps.Closers = append(deps.Closers, client)

		bus, berr := infraeventbus.NewWithRedis(client, cfg.Redis.KeyPrefix, events.EventTypes, logger)
		if berr != nil {
			return nil, fmt.Errorf("failed to create Redis event bus: %w", berr)
		}
		deps.Closers = append(deps.Closers, bus)
		deps.EventBus = bus
		deps.Cache = infracache.NewRedisCache(client, cfg.Redis.KeyPrefix, logger)
		logger.Info("Using Redis event bus and cache")
	} else {
		deps.EventBus = infraeventbus.NewWithMemory(logger)
		deps.Cache = infracache.NewMemoryCache()
		logger.Info("Using in-memory event bus and cache")
	}

	return deps, nil
}
