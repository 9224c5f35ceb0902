package infra

import (
	"errors"
	"fmt"

	infrarepo "github.com/amirasaad/ledger/infra/repository"
	"github.com/amirasaad/ledger/internal/migrations"
	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

// Migrate brings the schema up to date. Postgres runs the embedded SQL
// migrations; sqlite is migrated from the gorm models.
func Migrate(db *gorm.DB, driver string) error {
	switch driver {
	case DriverPostgres:
		return migratePostgres(db)
	case DriverSQLite:
		return db.AutoMigrate(infrarepo.Models()...)
	default:
		return fmt.Errorf("migrate: unsupported driver %q", driver)
	}
}

func migratePostgres(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("migrate: open source: %w", err)
	}
	defer src.Close() //nolint:errcheck

	driver, err := migratepostgres.WithInstance(sqlDB, &migratepostgres.Config{})
	if err != nil {
		return fmt.Errorf("migrate: open driver: %w", err)
	}

	// m.Close would close the shared *sql.DB, so it is not called.
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate: up: %w", err)
	}
	return nil
}
