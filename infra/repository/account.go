package repository

import (
	"context"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/dto"
	accountrepo "github.com/amirasaad/ledger/pkg/repository/account"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an account repository bound to db.
func NewAccountRepository(db *gorm.DB) accountrepo.Repository {
	return &accountRepository{db: db}
}

// Get implements account.Repository.
func (r *accountRepository) Get(ctx context.Context, id uint) (*dto.AccountRead, error) {
	var acct Account
	if err := r.db.WithContext(ctx).First(&acct, "id = ?", id).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapAccountModelToDTO(&acct), nil
}

// GetForUpdate implements account.Repository. SQLite has no row locks and
// ignores the locking clause.
func (r *accountRepository) GetForUpdate(ctx context.Context, id uint) (*dto.AccountRead, error) {
	var acct Account
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		First(&acct, "id = ?", id).Error
	if err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapAccountModelToDTO(&acct), nil
}

// Create implements account.Repository.
func (r *accountRepository) Create(ctx context.Context, create dto.AccountCreate) (*dto.AccountRead, error) {
	acct := Account{
		CustomerID: create.CustomerID,
		Balance:    NewNumeric(create.Balance),
	}
	if err := r.db.WithContext(ctx).Create(&acct).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapAccountModelToDTO(&acct), nil
}

// UpdateBalance implements account.Repository.
func (r *accountRepository) UpdateBalance(ctx context.Context, id uint, balance decimal.Decimal) error {
	res := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("id = ?", id).
		Update("balance", NewNumeric(balance))
	if res.Error != nil {
		return MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCustomer implements account.Repository.
func (r *accountRepository) ListByCustomer(ctx context.Context, customerID uint) ([]*dto.AccountRead, error) {
	var accts []Account
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("id").
		Find(&accts).Error
	if err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	result := make([]*dto.AccountRead, 0, len(accts))
	for i := range accts {
		result = append(result, mapAccountModelToDTO(&accts[i]))
	}
	return result, nil
}

func mapAccountModelToDTO(acct *Account) *dto.AccountRead {
	return &dto.AccountRead{
		ID:         acct.ID,
		CustomerID: acct.CustomerID,
		Balance:    acct.Balance.Decimal,
	}
}
