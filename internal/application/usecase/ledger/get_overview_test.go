package ledger

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shop-khata/backend/internal/application/adapter"
	"github.com/shop-khata/backend/internal/domain/entity"
	"github.com/shop-khata/backend/internal/domain/valueobject"
	"github.com/shop-khata/backend/internal/integration/persistence"
	"github.com/shop-khata/backend/internal/integration/persistence/model"
)

// testRepos bundles the repositories the ledger use cases read from.
type testRepos struct {
	income   adapter.IncomeRepository
	expense  adapter.ExpenseRepository
	cash     adapter.CashAdjustmentRepository
	due      adapter.DueRepository
	closing  adapter.NightClosingRepository
	settings adapter.SettingsRepository
	uploaded adapter.UploadedDayRepository
}

func newTestRepos(t *testing.T) testRepos {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&model.IncomeModel{},
		&model.ExpenseModel{},
		&model.NightClosingModel{},
		&model.CashAdjustmentModel{},
		&model.DueModel{},
		&model.SettingsModel{},
		&model.UploadedDayModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testRepos{
		income:   persistence.NewIncomeRepository(db),
		expense:  persistence.NewExpenseRepository(db),
		cash:     persistence.NewCashAdjustmentRepository(db),
		due:      persistence.NewDueRepository(db),
		closing:  persistence.NewNightClosingRepository(db),
		settings: persistence.NewSettingsRepository(db),
		uploaded: persistence.NewUploadedDayRepository(db),
	}
}

func (r testRepos) overviewUseCase() *GetOverviewUseCase {
	return NewGetOverviewUseCase(r.income, r.expense, r.cash, r.due, r.closing, r.settings, r.uploaded)
}

func TestGetOverviewUseCase_CashBalance(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	day := valueobject.Day("2026-08-28")

	settings := entity.DefaultSettings()
	settings.OpeningCash = decimal.NewFromInt(2000)
	if err := repos.settings.Save(ctx, settings); err != nil {
		t.Fatalf("failed to seed settings: %v", err)
	}

	seedEntries := []struct {
		kind   string
		amount int64
	}{
		{"income", 500},
		{"income", 300},
		{"expense", 150},
		{"cash_in", 1000},
		{"cash_out", 400},
	}
	for _, s := range seedEntries {
		amount := decimal.NewFromInt(s.amount)
		var err error
		switch s.kind {
		case "income":
			err = repos.income.Create(ctx, entity.NewIncomeEntry(entity.IncomePhotocopy, amount, day))
		case "expense":
			err = repos.expense.Create(ctx, entity.NewExpense("supplies", amount, day))
		case "cash_in":
			err = repos.cash.Create(ctx, entity.NewCashAdjustment(amount, entity.CashIn, "", day))
		case "cash_out":
			err = repos.cash.Create(ctx, entity.NewCashAdjustment(amount, entity.CashOut, "", day))
		}
		if err != nil {
			t.Fatalf("failed to seed %s: %v", s.kind, err)
		}
	}

	output, err := repos.overviewUseCase().Execute(ctx, GetOverviewInput{Day: day})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// 2000 + 800 - 150 + 1000 - 400
	if !output.CurrentCashBalance.Equal(decimal.NewFromInt(3250)) {
		t.Errorf("expected cash balance 3250, got %s", output.CurrentCashBalance)
	}
	if !output.TodayIncome.Equal(decimal.NewFromInt(800)) {
		t.Errorf("expected today's income 800, got %s", output.TodayIncome)
	}
	if !output.AllTimeProfit.Equal(decimal.NewFromInt(650)) {
		t.Errorf("expected profit 650, got %s", output.AllTimeProfit)
	}
	if output.IsTodayClosed {
		t.Error("expected the day not to count as closed with no slots recorded")
	}
}

func TestGetOverviewUseCase_EmptyStore(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)

	// No settings row seeded: defaults apply, everything is zero.
	output, err := repos.overviewUseCase().Execute(ctx, GetOverviewInput{Day: valueobject.Day("2026-08-28")})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !output.CurrentCashBalance.IsZero() {
		t.Errorf("expected zero balance, got %s", output.CurrentCashBalance)
	}
	if !output.TotalOutstandingDues.IsZero() {
		t.Errorf("expected zero dues, got %s", output.TotalOutstandingDues)
	}
	if output.IsTodayReportUploaded {
		t.Error("expected no uploaded marker")
	}
}

func TestGetOverviewUseCase_ClosedDay(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	day := valueobject.Day("2026-08-28")

	categories := entity.ClosingCategories()
	for _, category := range categories[:len(categories)-1] {
		entry := entity.NewNightClosingEntry(category, decimal.NewFromInt(10), day)
		if _, err := repos.closing.Upsert(ctx, entry); err != nil {
			t.Fatalf("failed to seed slot %s: %v", category, err)
		}
	}

	output, err := repos.overviewUseCase().Execute(ctx, GetOverviewInput{Day: day})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if output.IsTodayClosed {
		t.Error("expected the day to stay open with one slot missing")
	}

	last := entity.NewNightClosingEntry(categories[len(categories)-1], decimal.NewFromInt(10), day)
	if _, err := repos.closing.Upsert(ctx, last); err != nil {
		t.Fatalf("failed to seed last slot: %v", err)
	}

	output, err = repos.overviewUseCase().Execute(ctx, GetOverviewInput{Day: day})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !output.IsTodayClosed {
		t.Error("expected the day to be closed with every slot recorded")
	}
}

func TestGetMonthlySeriesUseCase(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	useCase := NewGetMonthlySeriesUseCase(repos.income, repos.expense)

	seed := map[valueobject.Day]int64{
		"2026-08-10": 500,
		"2026-08-20": 300,
		"2026-07-15": 200,
	}
	for day, amount := range seed {
		if err := repos.income.Create(ctx, entity.NewIncomeEntry(entity.IncomePhotocopy, decimal.NewFromInt(amount), day)); err != nil {
			t.Fatalf("failed to seed income on %s: %v", day, err)
		}
	}
	if err := repos.expense.Create(ctx, entity.NewExpense("toner", decimal.NewFromInt(150), valueobject.Day("2026-08-05"))); err != nil {
		t.Fatalf("failed to seed expense: %v", err)
	}

	output, err := useCase.Execute(ctx, GetMonthlySeriesInput{Day: valueobject.Day("2026-08-28")})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(output.Points) != 6 {
		t.Fatalf("expected 6 points, got %d", len(output.Points))
	}

	// Oldest first; the last point is the anchor month.
	last := output.Points[5]
	if last.Month.Key() != "2026-08" {
		t.Errorf("expected last month 2026-08, got %s", last.Month.Key())
	}
	if !last.Income.Equal(decimal.NewFromInt(800)) {
		t.Errorf("expected August income 800, got %s", last.Income)
	}
	if !last.Expense.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected August expense 150, got %s", last.Expense)
	}

	july := output.Points[4]
	if !july.Income.Equal(decimal.NewFromInt(200)) {
		t.Errorf("expected July income 200, got %s", july.Income)
	}

	// Months with no entries still appear, zero-valued.
	if !output.Points[0].Income.IsZero() || !output.Points[0].Expense.IsZero() {
		t.Errorf("expected empty month to be zero, got %s/%s", output.Points[0].Income, output.Points[0].Expense)
	}
}

func TestAddIncomeUseCase_Validation(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	useCase := NewAddIncomeUseCase(repos.income)

	t.Run("rejects unknown categories", func(t *testing.T) {
		_, err := useCase.Execute(ctx, AddIncomeInput{
			Category: "lottery",
			Amount:   decimal.NewFromInt(10),
		})
		if err == nil {
			t.Fatal("expected an error for an unknown category")
		}
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
			_, err := useCase.Execute(ctx, AddIncomeInput{
				Category: entity.IncomePhotocopy,
				Amount:   amount,
			})
			if err == nil {
				t.Errorf("expected an error for amount %s", amount)
			}
		}
	})

	t.Run("nothing is stored when validation fails", func(t *testing.T) {
		total, err := repos.income.SumAll(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !total.IsZero() {
			t.Errorf("expected empty store, got total %s", total)
		}
	})

	t.Run("defaults the day to today", func(t *testing.T) {
		output, err := useCase.Execute(ctx, AddIncomeInput{
			Category: entity.IncomePhotocopy,
			Amount:   decimal.NewFromInt(60),
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Entry.Day != valueobject.Today() {
			t.Errorf("expected today's date, got %s", output.Entry.Day)
		}
	})
}
