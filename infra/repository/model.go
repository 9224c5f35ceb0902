package repository

import (
	"time"
)

// Customer represents a customer record in the database.
type Customer struct {
	ID             uint `gorm:"primaryKey"`
	CreatedAt      time.Time
	Name           string    `gorm:"size:50;not null;uniqueIndex:idx_customer_identity"`
	Identification string    `gorm:"size:20;not null;uniqueIndex:idx_customer_identity"`
	Accounts       []Account `gorm:"constraint:OnDelete:RESTRICT"`
}

// Account represents an account record in the database.
type Account struct {
	ID         uint `gorm:"primaryKey"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	CustomerID uint    `gorm:"not null;index"`
	Balance    Numeric `gorm:"not null"`

	Outgoing []Transaction `gorm:"foreignKey:AccountIDFrom;constraint:OnDelete:RESTRICT"`
	Incoming []Transaction `gorm:"foreignKey:AccountIDTo;constraint:OnDelete:RESTRICT"`
}

// Transaction represents a persisted transfer. Seq orders records by
// creation; UUID is the public identifier.
type Transaction struct {
	Seq                  uint    `gorm:"primaryKey;autoIncrement"`
	UUID                 string  `gorm:"type:varchar(36);not null;uniqueIndex"`
	AccountIDFrom        uint    `gorm:"not null;index"`
	AccountIDTo          uint    `gorm:"not null;index"`
	Amount               Numeric `gorm:"not null"`
	TransactionTimestamp string  `gorm:"type:varchar(40);not null"`
}

// Models lists every table of the ledger store in dependency order.
func Models() []any {
	return []any{&Customer{}, &Account{}, &Transaction{}}
}
