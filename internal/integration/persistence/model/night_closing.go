package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shop-khata/backend/internal/domain/entity"
	"github.com/shop-khata/backend/internal/domain/valueobject"
)

// NightClosingModel represents the night_closing_entries table. The unique
// index on (day, category) enforces one entry per slot.
type NightClosingModel struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Category string          `gorm:"type:varchar(32);not null;uniqueIndex:idx_closing_day_category"`
	Amount   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Day      string          `gorm:"type:varchar(10);not null;uniqueIndex:idx_closing_day_category;index"`
}

// TableName returns the table name for the NightClosingModel.
func (NightClosingModel) TableName() string {
	return "night_closing_entries"
}

// ToEntity converts a NightClosingModel to a domain NightClosingEntry entity.
func (m *NightClosingModel) ToEntity() *entity.NightClosingEntry {
	return &entity.NightClosingEntry{
		ID:       m.ID,
		Category: entity.ClosingCategory(m.Category),
		Amount:   m.Amount,
		Day:      valueobject.Day(m.Day),
	}
}

// NightClosingFromEntity creates a NightClosingModel from a domain entity.
func NightClosingFromEntity(entry *entity.NightClosingEntry) *NightClosingModel {
	return &NightClosingModel{
		ID:       entry.ID,
		Category: string(entry.Category),
		Amount:   entry.Amount,
		Day:      entry.Day.String(),
	}
}
