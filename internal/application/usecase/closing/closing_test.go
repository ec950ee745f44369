package closing

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

func newClosingRepo(t *testing.T) adapter.NightClosingRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.NightClosingModel{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return persistence.NewNightClosingRepository(db)
}

func TestRecordEntryUseCase(t *testing.T) {
	ctx := context.Background()
	repo := newClosingRepo(t)
	record := NewRecordEntryUseCase(repo)
	status := NewGetDayStatusUseCase(repo)
	day := valueobject.Day("2026-08-28")

	t.Run("rejects unknown categories", func(t *testing.T) {
		_, err := record.Execute(ctx, RecordEntryInput{
			Day:      day,
			Category: "paypal",
			Amount:   decimal.NewFromInt(10),
		})
		if err == nil {
			t.Fatal("expected an error for an unknown category")
		}
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		_, err := record.Execute(ctx, RecordEntryInput{
			Day:      day,
			Category: entity.ClosingRocket,
			Amount:   decimal.Zero,
		})
		if err == nil {
			t.Fatal("expected an error for a zero amount")
		}
	})

	t.Run("re-recording a slot replaces the amount", func(t *testing.T) {
		first, err := record.Execute(ctx, RecordEntryInput{
			Day:      day,
			Category: entity.ClosingBkashAgent,
			Amount:   decimal.NewFromInt(4000),
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		second, err := record.Execute(ctx, RecordEntryInput{
			Day:      day,
			Category: entity.ClosingBkashAgent,
			Amount:   decimal.NewFromInt(4500),
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if second.Entry.ID != first.Entry.ID {
			t.Error("expected the stored entry to be replaced in place, not duplicated")
		}

		output, err := status.Execute(ctx, GetDayStatusInput{Day: day})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Recorded != 1 {
			t.Errorf("expected 1 recorded slot, got %d", output.Recorded)
		}
		if !output.Entries[entity.ClosingBkashAgent].Amount.Equal(decimal.NewFromInt(4500)) {
			t.Errorf("expected 4500, got %s", output.Entries[entity.ClosingBkashAgent].Amount)
		}
	})
}

func TestGetDayStatusUseCase_CompletionGate(t *testing.T) {
	ctx := context.Background()
	repo := newClosingRepo(t)
	record := NewRecordEntryUseCase(repo)
	status := NewGetDayStatusUseCase(repo)
	day := valueobject.Day("2026-08-28")

	categories := entity.ClosingCategories()
	for _, category := range categories[:len(categories)-1] {
		_, err := record.Execute(ctx, RecordEntryInput{Day: day, Category: category, Amount: decimal.NewFromInt(100)})
		if err != nil {
			t.Fatalf("failed to record %s: %v", category, err)
		}
	}

	output, err := status.Execute(ctx, GetDayStatusInput{Day: day})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if output.Complete {
		t.Error("expected the day to stay incomplete with one slot missing")
	}
	if output.Recorded != output.Total-1 {
		t.Errorf("expected %d recorded, got %d", output.Total-1, output.Recorded)
	}

	// The wallet subtotal covers the mobile-banking slots only.
	walletCount := int64(len(entity.WalletCategories()))
	if !output.WalletSubtotal.Equal(decimal.NewFromInt(100 * walletCount)) {
		t.Errorf("expected wallet subtotal %d, got %s", 100*walletCount, output.WalletSubtotal)
	}

	last := categories[len(categories)-1]
	if _, err := record.Execute(ctx, RecordEntryInput{Day: day, Category: last, Amount: decimal.NewFromInt(100)}); err != nil {
		t.Fatalf("failed to record %s: %v", last, err)
	}

	output, err = status.Execute(ctx, GetDayStatusInput{Day: day})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !output.Complete {
		t.Error("expected the day to be complete with every slot recorded")
	}
}

func TestResetDayUseCase(t *testing.T) {
	ctx := context.Background()
	repo := newClosingRepo(t)
	record := NewRecordEntryUseCase(repo)
	status := NewGetDayStatusUseCase(repo)
	reset := NewResetDayUseCase(repo)
	day := valueobject.Day("2026-08-28")

	for _, category := range entity.ClosingCategories() {
		_, err := record.Execute(ctx, RecordEntryInput{Day: day, Category: category, Amount: decimal.NewFromInt(50)})
		if err != nil {
			t.Fatalf("failed to record %s: %v", category, err)
		}
	}

	if err := reset.Execute(ctx, ResetDayInput{Day: day}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	output, err := status.Execute(ctx, GetDayStatusInput{Day: day})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if output.Recorded != 0 {
		t.Errorf("expected an empty day after reset, got %d slots", output.Recorded)
	}
	if output.Complete {
		t.Error("expected the day to be incomplete after reset")
	}

	// Resetting again is a harmless no-op.
	if err := reset.Execute(ctx, ResetDayInput{Day: day}); err != nil {
		t.Errorf("expected repeat reset to succeed, got %v", err)
	}
}
