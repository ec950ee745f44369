package report

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shop-khata/backend/internal/domain/entity"
	"github.com/shop-khata/backend/internal/domain/valueobject"
	"github.com/shop-khata/backend/internal/integration/persistence"
	"github.com/shop-khata/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
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
		&model.DueModel{},
		&model.UploadedDayModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func TestGetDailyReportUseCase(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	incomeRepo := persistence.NewIncomeRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	closingRepo := persistence.NewNightClosingRepository(db)
	dueRepo := persistence.NewDueRepository(db)
	uploadedRepo := persistence.NewUploadedDayRepository(db)
	useCase := NewGetDailyReportUseCase(incomeRepo, expenseRepo, closingRepo, dueRepo, uploadedRepo)

	day := valueobject.Day("2026-08-28")
	otherDay := valueobject.Day("2026-08-27")

	if err := incomeRepo.Create(ctx, entity.NewIncomeEntry(entity.IncomePhotocopy, decimal.NewFromInt(500), day)); err != nil {
		t.Fatalf("failed to seed income: %v", err)
	}
	if err := incomeRepo.Create(ctx, entity.NewIncomeEntry(entity.IncomeOthers, decimal.NewFromInt(100), otherDay)); err != nil {
		t.Fatalf("failed to seed other-day income: %v", err)
	}
	if err := expenseRepo.Create(ctx, entity.NewExpense("toner", decimal.NewFromInt(200), day)); err != nil {
		t.Fatalf("failed to seed expense: %v", err)
	}
	if err := dueRepo.Create(ctx, entity.NewCustomerDue("Rahim", "", decimal.NewFromInt(50), "", "", day)); err != nil {
		t.Fatalf("failed to seed due: %v", err)
	}
	for _, category := range []entity.ClosingCategory{entity.ClosingBkashAgent, entity.ClosingGPLoad} {
		if _, err := closingRepo.Upsert(ctx, entity.NewNightClosingEntry(category, decimal.NewFromInt(1000), day)); err != nil {
			t.Fatalf("failed to seed closing slot %s: %v", category, err)
		}
	}

	output, err := useCase.Execute(ctx, GetDailyReportInput{Day: day})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	t.Run("only the day's entries appear", func(t *testing.T) {
		if len(output.Income) != 1 {
			t.Errorf("expected 1 income entry, got %d", len(output.Income))
		}
		if len(output.Expenses) != 1 || len(output.Dues) != 1 {
			t.Errorf("expected 1 expense and 1 due, got %d/%d", len(output.Expenses), len(output.Dues))
		}
	})

	t.Run("aggregates cover the day only", func(t *testing.T) {
		if !output.TotalIncome.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected income 500, got %s", output.TotalIncome)
		}
		if !output.NetForDay.Equal(decimal.NewFromInt(300)) {
			t.Errorf("expected net 300, got %s", output.NetForDay)
		}
		if !output.ClosingTotal.Equal(decimal.NewFromInt(2000)) {
			t.Errorf("expected closing total 2000, got %s", output.ClosingTotal)
		}
		// Only the bkash slot is a wallet slot.
		if !output.WalletSubtotal.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected wallet subtotal 1000, got %s", output.WalletSubtotal)
		}
	})

	t.Run("two slots do not close the day", func(t *testing.T) {
		if output.IsClosed {
			t.Error("expected the day to be open")
		}
	})

	t.Run("uploaded marker is reflected", func(t *testing.T) {
		if output.IsUploaded {
			t.Error("expected the day to start unmarked")
		}

		if err := NewMarkUploadedUseCase(uploadedRepo).Execute(ctx, MarkUploadedInput{Day: day}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		refreshed, err := useCase.Execute(ctx, GetDailyReportInput{Day: day})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !refreshed.IsUploaded {
			t.Error("expected the day to be marked uploaded")
		}
	})
}

func TestMarkUploadedUseCase_Idempotent(t *testing.T) {
	ctx := context.Background()
	uploadedRepo := persistence.NewUploadedDayRepository(newTestDB(t))
	mark := NewMarkUploadedUseCase(uploadedRepo)
	list := NewListUploadedDaysUseCase(uploadedRepo)
	day := valueobject.Day("2026-08-28")

	if err := mark.Execute(ctx, MarkUploadedInput{Day: day}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := mark.Execute(ctx, MarkUploadedInput{Day: day}); err != nil {
		t.Fatalf("expected repeat marking to succeed, got %v", err)
	}

	output, err := list.Execute(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(output.Days) != 1 {
		t.Errorf("expected the day to appear once, got %d entries", len(output.Days))
	}
}
