package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shop-khata/backend/internal/domain/entity"
	"github.com/shop-khata/backend/internal/domain/valueobject"
)

// CashAdjustmentModel represents the cash_adjustments table in the database.
type CashAdjustmentModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Direction string          `gorm:"type:varchar(4);not null;index"`
	Note      string          `gorm:"type:text"`
	Day       string          `gorm:"type:varchar(10);not null;index"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the CashAdjustmentModel.
func (CashAdjustmentModel) TableName() string {
	return "cash_adjustments"
}

// ToEntity converts a CashAdjustmentModel to a domain CashAdjustment entity.
func (m *CashAdjustmentModel) ToEntity() *entity.CashAdjustment {
	return &entity.CashAdjustment{
		ID:        m.ID,
		Amount:    m.Amount,
		Direction: entity.CashDirection(m.Direction),
		Note:      m.Note,
		Day:       valueobject.Day(m.Day),
		CreatedAt: m.CreatedAt,
	}
}

// CashAdjustmentFromEntity creates a CashAdjustmentModel from a domain entity.
func CashAdjustmentFromEntity(adjustment *entity.CashAdjustment) *CashAdjustmentModel {
	return &CashAdjustmentModel{
		ID:        adjustment.ID,
		Amount:    adjustment.Amount,
		Direction: string(adjustment.Direction),
		Note:      adjustment.Note,
		Day:       adjustment.Day.String(),
		CreatedAt: adjustment.CreatedAt,
	}
}
