// Package report contains the daily report use cases.
package report

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shop-khata/backend/internal/application/adapter"
	"github.com/shop-khata/backend/internal/domain/entity"
	"github.com/shop-khata/backend/internal/domain/valueobject"
)

// GetDailyReportInput represents the input for building a daily report.
type GetDailyReportInput struct {
	Day valueobject.Day
}

// GetDailyReportOutput is the full report for one day: every entry recorded
// on that day plus the day's aggregates.
type GetDailyReportOutput struct {
	Day valueobject.Day

	Income       []*entity.IncomeEntry
	Expenses     []*entity.Expense
	NightClosing []*entity.NightClosingEntry
	Dues         []*entity.CustomerDue

	TotalIncome    decimal.Decimal
	TotalExpense   decimal.Decimal
	NetForDay      decimal.Decimal
	ClosingTotal   decimal.Decimal
	WalletSubtotal decimal.Decimal

	IsClosed   bool
	IsUploaded bool
}

// GetDailyReportUseCase assembles the printable day report.
type GetDailyReportUseCase struct {
	incomeRepo   adapter.IncomeRepository
	expenseRepo  adapter.ExpenseRepository
	closingRepo  adapter.NightClosingRepository
	dueRepo      adapter.DueRepository
	uploadedRepo adapter.UploadedDayRepository
}

// NewGetDailyReportUseCase creates a new GetDailyReportUseCase instance.
func NewGetDailyReportUseCase(
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
	closingRepo adapter.NightClosingRepository,
	dueRepo adapter.DueRepository,
	uploadedRepo adapter.UploadedDayRepository,
) *GetDailyReportUseCase {
	return &GetDailyReportUseCase{
		incomeRepo:   incomeRepo,
		expenseRepo:  expenseRepo,
		closingRepo:  closingRepo,
		dueRepo:      dueRepo,
		uploadedRepo: uploadedRepo,
	}
}

// Execute builds the report for the day.
func (uc *GetDailyReportUseCase) Execute(ctx context.Context, input GetDailyReportInput) (*GetDailyReportOutput, error) {
	day := input.Day
	if day == "" {
		day = valueobject.Today()
	}

	income, err := uc.incomeRepo.ListOnDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list income: %w", err)
	}
	expenses, err := uc.expenseRepo.ListOnDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	closingEntries, err := uc.closingRepo.ListOnDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list closing entries: %w", err)
	}
	dues, err := uc.dueRepo.ListOnDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list dues: %w", err)
	}
	totalIncome, err := uc.incomeRepo.SumOnDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to sum income: %w", err)
	}
	totalExpense, err := uc.expenseRepo.SumOnDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}
	walletSubtotal, err := uc.closingRepo.SumOnDayForCategories(ctx, day, entity.WalletCategories())
	if err != nil {
		return nil, fmt.Errorf("failed to sum wallet slots: %w", err)
	}
	uploaded, err := uc.uploadedRepo.Contains(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to check uploaded marker: %w", err)
	}

	closingTotal := decimal.Zero
	for _, e := range closingEntries {
		closingTotal = closingTotal.Add(e.Amount)
	}

	return &GetDailyReportOutput{
		Day:            day,
		Income:         income,
		Expenses:       expenses,
		NightClosing:   closingEntries,
		Dues:           dues,
		TotalIncome:    totalIncome,
		TotalExpense:   totalExpense,
		NetForDay:      totalIncome.Sub(totalExpense),
		ClosingTotal:   closingTotal,
		WalletSubtotal: walletSubtotal,
		IsClosed:       len(closingEntries) >= len(entity.ClosingCategories()),
		IsUploaded:     uploaded,
	}, nil
}
