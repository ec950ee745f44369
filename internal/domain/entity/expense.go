package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shop-khata/backend/internal/domain/valueobject"
)

// Expense is one recorded shop expense.
type Expense struct {
	ID     uuid.UUID
	Name   string
	Amount decimal.Decimal
	Day    valueobject.Day
}

// NewExpense creates a new Expense dated day.
func NewExpense(name string, amount decimal.Decimal, day valueobject.Day) *Expense {
	return &Expense{
		ID:     uuid.New(),
		Name:   name,
		Amount: amount,
		Day:    day,
	}
}
