// Package testutils provides helpers for tests that need a real ledger store.
package testutils

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/amirasaad/ledger/infra"
	infraeventbus "github.com/amirasaad/ledger/infra/eventbus"
	infrarepo "github.com/amirasaad/ledger/infra/repository"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/service/ledger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SQLiteURL returns a DATABASE_URL for a fresh, private in-memory sqlite
// database.
func SQLiteURL() string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
}

// NewTestDB opens and migrates an in-memory sqlite store that is closed when
// the test ends.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, driver, err := infra.NewDBConnection(&config.DB{Url: SQLiteURL()}, "test")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := infra.Migrate(db, driver); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// NewTestService returns a ledger service over a fresh sqlite store together
// with the memory bus it emits to.
func NewTestService(t testing.TB, opts ...ledger.Option) (*ledger.Service, *infraeventbus.MemoryEventBus, *gorm.DB) {
	t.Helper()
	db := NewTestDB(t)
	logger := DiscardLogger()
	bus := infraeventbus.NewWithMemory(logger)
	svc := ledger.New(infrarepo.NewUoW(db), bus, logger, opts...)
	return svc, bus, db
}
