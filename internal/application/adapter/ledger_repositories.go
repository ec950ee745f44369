// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shop-khata/backend/internal/domain/entity"
	"github.com/shop-khata/backend/internal/domain/valueobject"
)

// IncomeRepository defines persistence operations for income entries.
type IncomeRepository interface {
	// Create stores a new income entry.
	Create(ctx context.Context, entry *entity.IncomeEntry) error

	// ListAll retrieves all income entries, newest first.
	ListAll(ctx context.Context) ([]*entity.IncomeEntry, error)

	// ListOnDay retrieves the income entries dated day, newest first.
	ListOnDay(ctx context.Context, day valueobject.Day) ([]*entity.IncomeEntry, error)

	// ListRecent retrieves the most recent entries up to limit.
	ListRecent(ctx context.Context, limit int) ([]*entity.IncomeEntry, error)

	// SumAll returns the all-time income total.
	SumAll(ctx context.Context) (decimal.Decimal, error)

	// SumOnDay returns the income total for one day.
	SumOnDay(ctx context.Context, day valueobject.Day) (decimal.Decimal, error)

	// SumForMonth returns the income total for one calendar month.
	SumForMonth(ctx context.Context, month valueobject.Month) (decimal.Decimal, error)

	// DeleteByID removes an entry. Deleting an absent id is a no-op.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// ExpenseRepository defines persistence operations for expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	ListAll(ctx context.Context) ([]*entity.Expense, error)
	ListOnDay(ctx context.Context, day valueobject.Day) ([]*entity.Expense, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.Expense, error)
	SumAll(ctx context.Context) (decimal.Decimal, error)
	SumOnDay(ctx context.Context, day valueobject.Day) (decimal.Decimal, error)
	SumForMonth(ctx context.Context, month valueobject.Month) (decimal.Decimal, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// CashAdjustmentRepository defines persistence operations for cash-box adjustments.
type CashAdjustmentRepository interface {
	Create(ctx context.Context, adjustment *entity.CashAdjustment) error
	ListAll(ctx context.Context) ([]*entity.CashAdjustment, error)

	// SumByDirection returns the all-time total moved in the given direction.
	SumByDirection(ctx context.Context, direction entity.CashDirection) (decimal.Decimal, error)

	DeleteByID(ctx context.Context, id uuid.UUID) error
}
