package repository

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Numeric is a decimal column stored without loss. Postgres keeps it in
// numeric(20,4); sqlite gets a TEXT column because its NUMERIC affinity
// turns decimal strings into REAL.
type Numeric struct {
	decimal.Decimal
}

// NewNumeric wraps d for storage.
func NewNumeric(d decimal.Decimal) Numeric {
	return Numeric{Decimal: d}
}

// GormDBDataType implements schema.GormDataTypeInterface per dialect.
func (Numeric) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "numeric(20,4)"
	}
	return "text"
}
