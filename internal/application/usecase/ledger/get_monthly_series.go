package ledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shop-khata/backend/internal/application/adapter"
	"github.com/shop-khata/backend/internal/domain/valueobject"
)

// trailingMonthCount is the chart window: the current month and the five
// before it.
const trailingMonthCount = 6

// MonthPoint is one month's income/expense totals.
type MonthPoint struct {
	Month   valueobject.Month
	Label   string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// GetMonthlySeriesInput represents the input for the monthly chart series.
type GetMonthlySeriesInput struct {
	// Day anchors the trailing window. Empty means today.
	Day valueobject.Day
}

// GetMonthlySeriesOutput holds the ordered series, oldest month first.
type GetMonthlySeriesOutput struct {
	Points []MonthPoint
}

// GetMonthlySeriesUseCase computes the trailing six-month income/expense series.
type GetMonthlySeriesUseCase struct {
	incomeRepo  adapter.IncomeRepository
	expenseRepo adapter.ExpenseRepository
}

// NewGetMonthlySeriesUseCase creates a new GetMonthlySeriesUseCase instance.
func NewGetMonthlySeriesUseCase(
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
) *GetMonthlySeriesUseCase {
	return &GetMonthlySeriesUseCase{
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute computes the series. Months with no entries appear with zero
// totals so the chart has no gaps.
func (uc *GetMonthlySeriesUseCase) Execute(ctx context.Context, input GetMonthlySeriesInput) (*GetMonthlySeriesOutput, error) {
	day := input.Day
	if day == "" {
		day = valueobject.Today()
	}

	months := valueobject.TrailingMonths(day, trailingMonthCount)
	points := make([]MonthPoint, 0, len(months))

	for _, month := range months {
		income, err := uc.incomeRepo.SumForMonth(ctx, month)
		if err != nil {
			return nil, fmt.Errorf("failed to sum income for %s: %w", month.Key(), err)
		}
		expense, err := uc.expenseRepo.SumForMonth(ctx, month)
		if err != nil {
			return nil, fmt.Errorf("failed to sum expenses for %s: %w", month.Key(), err)
		}
		points = append(points, MonthPoint{
			Month:   month,
			Label:   month.Label(),
			Income:  income,
			Expense: expense,
		})
	}

	return &GetMonthlySeriesOutput{Points: points}, nil
}
