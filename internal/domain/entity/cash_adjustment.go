package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shop-khata/backend/internal/domain/valueobject"
)

// CashDirection marks whether money moved into or out of the cash box.
type CashDirection string

const (
	CashIn  CashDirection = "in"
	CashOut CashDirection = "out"
)

// IsValidCashDirection reports whether d is a known direction.
func IsValidCashDirection(d CashDirection) bool {
	return d == CashIn || d == CashOut
}

// CashAdjustment is a manual cash-box correction outside the income and
// expense logs.
type CashAdjustment struct {
	ID        uuid.UUID
	Amount    decimal.Decimal
	Direction CashDirection
	Note      string
	Day       valueobject.Day
	CreatedAt time.Time
}

// NewCashAdjustment creates a new adjustment dated day.
func NewCashAdjustment(amount decimal.Decimal, direction CashDirection, note string, day valueobject.Day) *CashAdjustment {
	return &CashAdjustment{
		ID:        uuid.New(),
		Amount:    amount,
		Direction: direction,
		Note:      note,
		Day:       day,
		CreatedAt: time.Now().UTC(),
	}
}
