package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDb.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestCustomerRepository_Create(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "customers" (.+) VALUES (.+) RETURNING "id"`).
		WithArgs(sqlmock.AnyArg(), "Thomas Anderson", "abc").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	c, err := repo.Create(context.Background(), dto.CustomerCreate{Name: "Thomas Anderson", Identification: "abc"})
	require.NoError(err)
	assert.Equal(t, uint(1), c.ID)
	assert.Equal(t, "Thomas Anderson", c.Name)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "customers" (.+) VALUES (.+) RETURNING "id"`).
		WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	_, err = repo.Create(context.Background(), dto.CustomerCreate{Name: "Thomas Anderson", Identification: "abc"})
	require.ErrorIs(err, domain.ErrAlreadyExists)
	require.NoError(mock.ExpectationsWereMet())
}

func TestCustomerRepository_FindByIdentity(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE name = \$1 AND identification = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "identification"}).
			AddRow(2, "Keanu Reeves", "efg"))

	c, err := repo.FindByIdentity(context.Background(), "Keanu Reeves", "efg")
	require.NoError(err)
	assert.Equal(t, &dto.CustomerRead{ID: 2, Name: "Keanu Reeves", Identification: "efg"}, c)

	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE name = \$1 AND identification = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "identification"}))

	_, err = repo.FindByIdentity(context.Background(), "Nobody", "zzz")
	require.ErrorIs(err, domain.ErrNotFound)
	require.NoError(mock.ExpectationsWereMet())
}

func TestCustomerRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "customers" ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "identification"}).
			AddRow(1, "Thomas Anderson", "abc").
			AddRow(2, "Keanu Reeves", "efg"))

	cs, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, cs, 2)
	assert.Equal(t, "Keanu Reeves", cs[1].Name)
}

func TestAccountRepository_GetForUpdate(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = \$1 (.+) FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "balance"}).
			AddRow(3, 1, "100.5"))

	acct, err := repo.GetForUpdate(context.Background(), 3)
	require.NoError(err)
	assert.Equal(t, uint(3), acct.ID)
	assert.Equal(t, uint(1), acct.CustomerID)
	assert.True(t, acct.Balance.Equal(decimal.RequireFromString("100.5")))

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = \$1 (.+) FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "balance"}))

	_, err = repo.GetForUpdate(context.Background(), 99)
	require.ErrorIs(err, domain.ErrNotFound)
	require.NoError(mock.ExpectationsWereMet())
}

func TestAccountRepository_Create(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "accounts" (.+) VALUES (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectCommit()

	acct, err := repo.Create(context.Background(), dto.AccountCreate{CustomerID: 1, Balance: decimal.NewFromInt(1000)})
	require.NoError(err)
	assert.Equal(t, uint(5), acct.ID)
	assert.True(t, acct.Balance.Equal(decimal.NewFromInt(1000)))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "accounts" (.+) VALUES (.+) RETURNING "id"`).
		WillReturnError(gorm.ErrForeignKeyViolated)
	mock.ExpectRollback()

	_, err = repo.Create(context.Background(), dto.AccountCreate{CustomerID: 42})
	require.ErrorIs(err, domain.ErrNotFound)
	require.NoError(mock.ExpectationsWereMet())
}

func TestAccountRepository_UpdateBalance(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "accounts" SET (.+) WHERE id = (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(repo.UpdateBalance(context.Background(), 1, decimal.NewFromInt(990)))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "accounts" SET (.+) WHERE id = (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.UpdateBalance(context.Background(), 404, decimal.NewFromInt(1))
	require.ErrorIs(err, domain.ErrNotFound)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "accounts" SET (.+) WHERE id = (.+)`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err = repo.UpdateBalance(context.Background(), 1, decimal.NewFromInt(1))
	require.ErrorIs(err, domain.ErrStorage)
	require.NoError(mock.ExpectationsWereMet())
}

func TestTransactionRepository_Create(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)
	id := uuid.NewString()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "transactions" (.+) VALUES (.+) RETURNING "seq"`).
		WithArgs(id, 1, 2, sqlmock.AnyArg(), "2024-03-01T10:30:00Z").
		WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(1))
	mock.ExpectCommit()

	tx, err := repo.Create(context.Background(), dto.TransactionCreate{
		UUID:          id,
		AccountIDFrom: 1,
		AccountIDTo:   2,
		Amount:        decimal.NewFromInt(10),
		Timestamp:     "2024-03-01T10:30:00Z",
	})
	require.NoError(err)
	assert.Equal(t, id, tx.UUID)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(10)))
	require.NoError(mock.ExpectationsWereMet())
}

func TestTransactionRepository_ListByAccount(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)
	columns := []string{"seq", "uuid", "account_id_from", "account_id_to", "amount", "transaction_timestamp"}

	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE .*account_id_from = \$1 OR account_id_to = \$2.* ORDER BY seq`).
		WithArgs(1, 1).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(1, "a", 1, 2, "10", "2024-03-01T10:30:00Z").
			AddRow(2, "b", 3, 1, "2.5", "2024-03-01T10:31:00Z"))

	txs, err := repo.ListByAccount(context.Background(), 1)
	require.NoError(err)
	require.Len(txs, 2)
	assert.Equal(t, "a", txs[0].UUID)
	assert.Equal(t, uint(3), txs[1].AccountIDFrom)

	mock.ExpectQuery(`SELECT \* FROM "transactions"`).
		WillReturnRows(sqlmock.NewRows(columns))

	txs, err = repo.ListByAccount(context.Background(), 7)
	require.NoError(err)
	assert.NotNil(t, txs)
	assert.Empty(t, txs)

	mock.ExpectQuery(`SELECT \* FROM "transactions"`).
		WillReturnError(errors.New("connection refused"))

	_, err = repo.ListByAccount(context.Background(), 7)
	require.ErrorIs(err, domain.ErrStorage)
	require.NoError(mock.ExpectationsWereMet())
}
