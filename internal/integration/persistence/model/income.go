// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shop-khata/backend/internal/domain/entity"
	"github.com/shop-khata/backend/internal/domain/valueobject"
)

// IncomeModel represents the income_entries table in the database.
type IncomeModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Category  string          `gorm:"type:varchar(32);not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Day       string          `gorm:"type:varchar(10);not null;index"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "income_entries"
}

// ToEntity converts an IncomeModel to a domain IncomeEntry entity.
func (m *IncomeModel) ToEntity() *entity.IncomeEntry {
	return &entity.IncomeEntry{
		ID:        m.ID,
		Category:  entity.IncomeCategory(m.Category),
		Amount:    m.Amount,
		Day:       valueobject.Day(m.Day),
		CreatedAt: m.CreatedAt,
	}
}

// IncomeFromEntity creates an IncomeModel from a domain IncomeEntry entity.
func IncomeFromEntity(entry *entity.IncomeEntry) *IncomeModel {
	return &IncomeModel{
		ID:        entry.ID,
		Category:  string(entry.Category),
		Amount:    entry.Amount,
		Day:       entry.Day.String(),
		CreatedAt: entry.CreatedAt,
	}
}
