package infra

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/ledger/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported store drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// ParseDatabaseURL picks the store driver for url and returns the DSN that
// driver expects. postgres:// and postgresql:// URLs select postgres;
// sqlite:// and file: URLs select sqlite with foreign keys enforced.
func ParseDatabaseURL(url string) (driver, dsn string, err error) {
	switch {
	case url == "":
		return "", "", errors.New("DATABASE_URL is not set")
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return DriverPostgres, url, nil
	case strings.HasPrefix(url, "sqlite://"):
		return DriverSQLite, withForeignKeys(strings.TrimPrefix(url, "sqlite://")), nil
	case strings.HasPrefix(url, "file:"):
		return DriverSQLite, withForeignKeys(url), nil
	default:
		return "", "", fmt.Errorf("unsupported DATABASE_URL scheme: %q", url)
	}
}

func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

// NewDBConnection opens the ledger store named by cfg.Url. The gorm logger is
// verbose only in development.
func NewDBConnection(
	cfg *config.DB,
	appEnv string,
) (*gorm.DB, string, error) {
	if cfg == nil {
		return nil, "", errors.New("DATABASE_URL is not set")
	}
	driver, dsn, err := ParseDatabaseURL(cfg.Url)
	if err != nil {
		return nil, "", err
	}

	var logMode logger.LogLevel
	if appEnv == "development" {
		logMode = logger.Info
	} else {
		logMode = logger.Silent
	}

	var dialector gorm.Dialector
	if driver == DriverPostgres {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	connection, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, "", err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, "", err
	}
	if driver == DriverSQLite {
		// one connection serializes transactions; sqlite has no row locks
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetConnMaxLifetime(0)
		return connection, driver, nil
	}
	sqlDB.SetMaxOpenConns(orDefault(cfg.MaxOpenConns, 25))
	sqlDB.SetMaxIdleConns(orDefault(cfg.MaxIdleConns, 25))
	lifetime := cfg.ConnMaxLifetime
	if lifetime <= 0 {
		lifetime = time.Hour
	}
	sqlDB.SetConnMaxLifetime(lifetime)

	return connection, driver, nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
