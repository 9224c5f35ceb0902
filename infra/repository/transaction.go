package repository

import (
	"context"

	"github.com/amirasaad/ledger/pkg/dto"
	transactionrepo "github.com/amirasaad/ledger/pkg/repository/transaction"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a transaction repository bound to db.
func NewTransactionRepository(db *gorm.DB) transactionrepo.Repository {
	return &transactionRepository{db: db}
}

// Create implements transaction.Repository.
func (r *transactionRepository) Create(
	ctx context.Context,
	create dto.TransactionCreate,
) (*dto.TransactionRead, error) {
	tx := mapTransactionCreateDTOToModel(create)
	if err := r.db.WithContext(ctx).Create(&tx).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapTransactionModelToDTO(&tx), nil
}

// Get implements transaction.Repository.
func (r *transactionRepository) Get(ctx context.Context, uuid string) (*dto.TransactionRead, error) {
	var tx Transaction
	if err := r.db.WithContext(ctx).First(&tx, "uuid = ?", uuid).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapTransactionModelToDTO(&tx), nil
}

// ListByAccount implements transaction.Repository.
func (r *transactionRepository) ListByAccount(
	ctx context.Context,
	accountID uint,
) ([]*dto.TransactionRead, error) {
	var txs []Transaction
	err := r.db.WithContext(ctx).
		Where("account_id_from = ? OR account_id_to = ?", accountID, accountID).
		Order("seq").
		Find(&txs).Error
	if err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	result := make([]*dto.TransactionRead, 0, len(txs))
	for i := range txs {
		result = append(result, mapTransactionModelToDTO(&txs[i]))
	}
	return result, nil
}

func mapTransactionCreateDTOToModel(create dto.TransactionCreate) Transaction {
	return Transaction{
		UUID:                 create.UUID,
		AccountIDFrom:        create.AccountIDFrom,
		AccountIDTo:          create.AccountIDTo,
		Amount:               NewNumeric(create.Amount),
		TransactionTimestamp: create.Timestamp,
	}
}

func mapTransactionModelToDTO(tx *Transaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		UUID:          tx.UUID,
		AccountIDFrom: tx.AccountIDFrom,
		AccountIDTo:   tx.AccountIDTo,
		Amount:        tx.Amount.Decimal,
		Timestamp:     tx.TransactionTimestamp,
	}
}
