package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/amirasaad/ledger/internal/fixtures/mocks"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/repository"
	accountrepo "github.com/amirasaad/ledger/pkg/repository/account"
	customerrepo "github.com/amirasaad/ledger/pkg/repository/customer"
	transactionrepo "github.com/amirasaad/ledger/pkg/repository/transaction"
	"github.com/amirasaad/ledger/pkg/service/ledger"
	"github.com/amirasaad/ledger/pkg/testutils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDeps struct {
	uow          *mocks.MockUnitOfWork
	customers    *mocks.MockCustomerRepository
	accounts     *mocks.MockAccountRepository
	transactions *mocks.MockTransactionRepository
	bus          *mocks.MockBus
}

func newMockService(t *testing.T) (*ledger.Service, *mockDeps) {
	t.Helper()
	d := &mockDeps{
		uow:          mocks.NewMockUnitOfWork(t),
		customers:    mocks.NewMockCustomerRepository(t),
		accounts:     mocks.NewMockAccountRepository(t),
		transactions: mocks.NewMockTransactionRepository(t),
		bus:          mocks.NewMockBus(t),
	}
	d.uow.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(d.uow)
		}).Maybe()
	d.uow.EXPECT().GetRepository((*customerrepo.Repository)(nil)).Return(d.customers, nil).Maybe()
	d.uow.EXPECT().GetRepository((*accountrepo.Repository)(nil)).Return(d.accounts, nil).Maybe()
	d.uow.EXPECT().GetRepository((*transactionrepo.Repository)(nil)).Return(d.transactions, nil).Maybe()
	return ledger.New(d.uow, d.bus, testutils.DiscardLogger()), d
}

func TestTransfer_StorageErrorEmitsNothing(t *testing.T) {
	t.Parallel()
	svc, d := newMockService(t)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	d.accounts.EXPECT().GetForUpdate(mock.Anything, uint(1)).
		Return(&dto.AccountRead{ID: 1, CustomerID: 1, Balance: decimal.NewFromInt(100)}, nil)
	d.accounts.EXPECT().GetForUpdate(mock.Anything, uint(2)).
		Return(&dto.AccountRead{ID: 2, CustomerID: 2, Balance: decimal.NewFromInt(5)}, nil)
	d.accounts.EXPECT().UpdateBalance(mock.Anything, uint(1), mock.Anything).Return(nil)
	d.accounts.EXPECT().UpdateBalance(mock.Anything, uint(2), mock.Anything).Return(nil)
	d.transactions.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, dbErr)

	tx, err := svc.Transfer(ctx, 1, 2, decimal.NewFromInt(10))
	assert.Nil(t, tx)
	require.ErrorIs(t, err, domain.ErrStorage)
	assert.ErrorIs(t, err, dbErr)
	d.bus.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
}

func TestTransfer_LocksInAscendingOrder(t *testing.T) {
	t.Parallel()
	svc, d := newMockService(t)
	ctx := context.Background()

	var order []uint
	d.accounts.EXPECT().GetForUpdate(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id uint) (*dto.AccountRead, error) {
			order = append(order, id)
			return &dto.AccountRead{ID: id, Balance: decimal.NewFromInt(50)}, nil
		})
	d.accounts.EXPECT().UpdateBalance(mock.Anything, uint(7), mock.Anything).
		RunAndReturn(func(_ context.Context, _ uint, balance decimal.Decimal) error {
			assert.True(t, decimal.NewFromInt(40).Equal(balance))
			return nil
		})
	d.accounts.EXPECT().UpdateBalance(mock.Anything, uint(3), mock.Anything).
		RunAndReturn(func(_ context.Context, _ uint, balance decimal.Decimal) error {
			assert.True(t, decimal.NewFromInt(60).Equal(balance))
			return nil
		})
	d.transactions.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, c dto.TransactionCreate) (*dto.TransactionRead, error) {
			return &dto.TransactionRead{
				UUID:          c.UUID,
				AccountIDFrom: c.AccountIDFrom,
				AccountIDTo:   c.AccountIDTo,
				Amount:        c.Amount,
				Timestamp:     c.Timestamp,
			}, nil
		})
	d.bus.EXPECT().Emit(mock.Anything, mock.Anything).Return(nil).Once()

	tx, err := svc.Transfer(ctx, 7, 3, decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.Equal(t, uint(7), tx.AccountIDFrom)
	assert.Equal(t, uint(3), tx.AccountIDTo)
	assert.Equal(t, []uint{3, 7}, order)
}

func TestTransfer_EmitFailureDoesNotFail(t *testing.T) {
	t.Parallel()
	svc, d := newMockService(t)

	d.accounts.EXPECT().GetForUpdate(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id uint) (*dto.AccountRead, error) {
			return &dto.AccountRead{ID: id}, nil
		})
	d.accounts.EXPECT().UpdateBalance(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	d.transactions.EXPECT().Create(mock.Anything, mock.Anything).
		Return(&dto.TransactionRead{UUID: "x", AccountIDFrom: 1, AccountIDTo: 2}, nil)
	d.bus.EXPECT().Emit(mock.Anything, mock.Anything).Return(errors.New("bus down"))

	tx, err := svc.Transfer(context.Background(), 1, 2, decimal.NewFromInt(1))
	require.NoError(t, err)
	assert.Equal(t, "x", tx.UUID)
}

func TestRegisterCustomer_LostInsertRace(t *testing.T) {
	t.Parallel()
	svc, d := newMockService(t)
	existing := &dto.CustomerRead{ID: 9, Name: "Thomas Anderson", Identification: "abc"}

	d.customers.EXPECT().FindByIdentity(mock.Anything, "Thomas Anderson", "abc").
		Return(nil, domain.ErrNotFound).Once()
	d.customers.EXPECT().Create(mock.Anything, dto.CustomerCreate{Name: "Thomas Anderson", Identification: "abc"}).
		Return(nil, domain.ErrAlreadyExists)
	d.customers.EXPECT().FindByIdentity(mock.Anything, "Thomas Anderson", "abc").
		Return(existing, nil).Once()

	c, err := svc.RegisterCustomer(context.Background(), "thomas", "anderson", "abc")
	assert.ErrorIs(t, err, domain.ErrCustomerAlreadyExists)
	assert.Equal(t, existing, c)
	d.bus.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
}

func TestOpenAccount_StorageError(t *testing.T) {
	t.Parallel()
	svc, d := newMockService(t)

	d.customers.EXPECT().FindByIdentity(mock.Anything, mock.Anything, mock.Anything).
		Return(&dto.CustomerRead{ID: 1, Name: "Thomas Anderson"}, nil)
	d.accounts.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, domain.StorageError(errors.New("disk full")))

	a, err := svc.OpenAccount(context.Background(), "thomas", "anderson", "abc", decimal.NewFromInt(1))
	assert.Nil(t, a)
	assert.ErrorIs(t, err, domain.ErrStorage)
	d.bus.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
}

func TestListCustomers_UnmappedErrorIsStorage(t *testing.T) {
	t.Parallel()
	svc, d := newMockService(t)
	d.customers.EXPECT().List(mock.Anything).Return(nil, errors.New("boom"))

	_, err := svc.ListCustomers(context.Background())
	assert.ErrorIs(t, err, domain.ErrStorage)
}
