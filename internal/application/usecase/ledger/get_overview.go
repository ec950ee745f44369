package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shop-khata/backend/internal/application/adapter"
	"github.com/shop-khata/backend/internal/domain/entity"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
	"github.com/shop-khata/backend/internal/domain/valueobject"
)

// closingSlotCount is the number of fixed night-closing slots; a day counts
// as closed once all of them are recorded.
var closingSlotCount = len(entity.ClosingCategories())

// GetOverviewInput represents the input for computing the dashboard overview.
type GetOverviewInput struct {
	// Day is the reference date, normally today. Empty means today.
	Day valueobject.Day
}

// GetOverviewOutput holds every derived metric the dashboard shows. All
// values are recomputed from the current collection contents on each call;
// nothing is cached or incrementally maintained.
type GetOverviewOutput struct {
	Day                   valueobject.Day
	TodayIncome           decimal.Decimal
	TodayExpense          decimal.Decimal
	TotalIncomeAllTime    decimal.Decimal
	TotalExpenseAllTime   decimal.Decimal
	CashIn                decimal.Decimal
	CashOut               decimal.Decimal
	OpeningCash           decimal.Decimal
	CurrentCashBalance    decimal.Decimal
	TotalOutstandingDues  decimal.Decimal
	AllTimeProfit         decimal.Decimal
	IsTodayClosed         bool
	IsTodayReportUploaded bool
}

// GetOverviewUseCase computes the derived financial state from the store.
type GetOverviewUseCase struct {
	incomeRepo   adapter.IncomeRepository
	expenseRepo  adapter.ExpenseRepository
	cashRepo     adapter.CashAdjustmentRepository
	dueRepo      adapter.DueRepository
	closingRepo  adapter.NightClosingRepository
	settingsRepo adapter.SettingsRepository
	uploadedRepo adapter.UploadedDayRepository
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
	cashRepo adapter.CashAdjustmentRepository,
	dueRepo adapter.DueRepository,
	closingRepo adapter.NightClosingRepository,
	settingsRepo adapter.SettingsRepository,
	uploadedRepo adapter.UploadedDayRepository,
) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		incomeRepo:   incomeRepo,
		expenseRepo:  expenseRepo,
		cashRepo:     cashRepo,
		dueRepo:      dueRepo,
		closingRepo:  closingRepo,
		settingsRepo: settingsRepo,
		uploadedRepo: uploadedRepo,
	}
}

// Execute computes the overview for the reference day.
//
// The cash balance is a running figure over the whole entry history:
//
//	openingCash + Σincome − Σexpense + Σcash_in − Σcash_out
//
// The opening balance is a one-time baseline, never reset per day.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	day := input.Day
	if day == "" {
		day = valueobject.Today()
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if errors.Is(err, domainerror.ErrSettingsNotFound) {
		settings = entity.DefaultSettings()
	} else if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	totalIncome, err := uc.incomeRepo.SumAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum income: %w", err)
	}
	totalExpense, err := uc.expenseRepo.SumAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}
	todayIncome, err := uc.incomeRepo.SumOnDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to sum today's income: %w", err)
	}
	todayExpense, err := uc.expenseRepo.SumOnDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to sum today's expenses: %w", err)
	}
	cashIn, err := uc.cashRepo.SumByDirection(ctx, entity.CashIn)
	if err != nil {
		return nil, fmt.Errorf("failed to sum cash in: %w", err)
	}
	cashOut, err := uc.cashRepo.SumByDirection(ctx, entity.CashOut)
	if err != nil {
		return nil, fmt.Errorf("failed to sum cash out: %w", err)
	}
	outstandingDues, err := uc.dueRepo.SumUnpaid(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum outstanding dues: %w", err)
	}
	closedSlots, err := uc.closingRepo.CountOnDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to count closing slots: %w", err)
	}
	uploaded, err := uc.uploadedRepo.Contains(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to check uploaded marker: %w", err)
	}

	currentCash := settings.OpeningCash.
		Add(totalIncome).
		Sub(totalExpense).
		Add(cashIn).
		Sub(cashOut)

	return &GetOverviewOutput{
		Day:                   day,
		TodayIncome:           todayIncome,
		TodayExpense:          todayExpense,
		TotalIncomeAllTime:    totalIncome,
		TotalExpenseAllTime:   totalExpense,
		CashIn:                cashIn,
		CashOut:               cashOut,
		OpeningCash:           settings.OpeningCash,
		CurrentCashBalance:    currentCash,
		TotalOutstandingDues:  outstandingDues,
		AllTimeProfit:         totalIncome.Sub(totalExpense),
		IsTodayClosed:         closedSlots >= closingSlotCount,
		IsTodayReportUploaded: uploaded,
	}, nil
}
