package sync

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shop-khata/backend/internal/application/adapter"
	"github.com/shop-khata/backend/internal/domain/entity"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
	"github.com/shop-khata/backend/internal/domain/valueobject"
	"github.com/shop-khata/backend/internal/integration/persistence"
	"github.com/shop-khata/backend/internal/integration/persistence/model"
)

func newSyncRepos(t *testing.T) (adapter.StateRepository, adapter.SettingsRepository, adapter.IncomeRepository) {
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
	return persistence.NewStateRepository(db),
		persistence.NewSettingsRepository(db),
		persistence.NewIncomeRepository(db)
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	stateRepo, settingsRepo, incomeRepo := newSyncRepos(t)
	day := valueobject.Day("2026-08-28")

	settings := entity.DefaultSettings()
	settings.PINHash = "source-pin-hash"
	settings.OpeningCash = decimal.NewFromInt(700)
	if err := settingsRepo.Save(ctx, settings); err != nil {
		t.Fatalf("failed to seed settings: %v", err)
	}
	if err := incomeRepo.Create(ctx, entity.NewIncomeEntry(entity.IncomePhotocopy, decimal.NewFromInt(90), day)); err != nil {
		t.Fatalf("failed to seed income: %v", err)
	}

	exported, err := NewExportStateUseCase(stateRepo).Execute(ctx)
	if err != nil {
		t.Fatalf("failed to export: %v", err)
	}

	t.Run("the PIN hash never appears in the document", func(t *testing.T) {
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(exported.JSON, &raw); err != nil {
			t.Fatalf("export is not valid JSON: %v", err)
		}
		var settingsDoc map[string]interface{}
		if err := json.Unmarshal(raw["settings"], &settingsDoc); err != nil {
			t.Fatalf("settings section is not valid JSON: %v", err)
		}
		for key := range settingsDoc {
			if key != "openingCash" && key != "autoSync" && key != "language" {
				t.Errorf("unexpected settings field %q in export", key)
			}
		}
	})

	t.Run("importing the document restores the collections", func(t *testing.T) {
		output, err := NewImportStateUseCase(stateRepo).Execute(ctx, ImportStateInput{JSON: exported.JSON})
		if err != nil {
			t.Fatalf("failed to import: %v", err)
		}
		if output.Imported.Income != 1 {
			t.Errorf("expected 1 income record imported, got %d", output.Imported.Income)
		}
		if output.Dropped.Total() != 0 {
			t.Errorf("expected no drops, got %d", output.Dropped.Total())
		}

		total, err := incomeRepo.SumAll(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !total.Equal(decimal.NewFromInt(90)) {
			t.Errorf("expected income total 90, got %s", total)
		}

		restored, err := settingsRepo.Get(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if restored.PINHash != "source-pin-hash" {
			t.Errorf("expected the PIN hash to survive the import, got %q", restored.PINHash)
		}
	})
}

func TestImportStateUseCase_DropsMalformedRecords(t *testing.T) {
	ctx := context.Background()
	stateRepo, _, incomeRepo := newSyncRepos(t)

	doc := []byte(`{
		"version": 1,
		"income": [
			{"id": "x", "category": "photocopy", "amount": "50", "date": "2026-08-28"},
			{"id": "x", "category": "lottery", "amount": "10", "date": "2026-08-28"},
			{"id": "x", "category": "photocopy", "amount": "-5", "date": "2026-08-28"},
			{"id": "x", "category": "photocopy", "amount": "10", "date": "not-a-date"}
		],
		"expenses": [
			{"id": "x", "name": "", "amount": "10", "date": "2026-08-28"}
		],
		"nightClosing": [
			{"id": "x", "category": "rocket", "amount": "100", "date": "2026-08-28"},
			{"id": "x", "category": "rocket", "amount": "200", "date": "2026-08-28"}
		],
		"cashAdjustments": [],
		"dues": [],
		"uploadedDates": ["2026-08-28", "2026-08-28", "garbage"]
	}`)

	output, err := NewImportStateUseCase(stateRepo).Execute(ctx, ImportStateInput{JSON: doc})
	if err != nil {
		t.Fatalf("expected the import to succeed despite bad records, got %v", err)
	}

	if output.Imported.Income != 1 || output.Dropped.Income != 3 {
		t.Errorf("expected 1 income kept and 3 dropped, got %d/%d", output.Imported.Income, output.Dropped.Income)
	}
	if output.Dropped.Expenses != 1 {
		t.Errorf("expected 1 expense dropped, got %d", output.Dropped.Expenses)
	}
	// Duplicate closing slots keep the first record only.
	if output.Imported.NightClosing != 1 || output.Dropped.NightClosing != 1 {
		t.Errorf("expected 1 closing kept and 1 dropped, got %d/%d", output.Imported.NightClosing, output.Dropped.NightClosing)
	}
	if output.Imported.UploadedDays != 1 || output.Dropped.UploadedDays != 2 {
		t.Errorf("expected 1 uploaded day kept and 2 dropped, got %d/%d", output.Imported.UploadedDays, output.Dropped.UploadedDays)
	}

	total, err := incomeRepo.SumAll(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !total.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected only the valid income stored, got total %s", total)
	}
}

func TestImportStateUseCase_RejectsInvalidJSON(t *testing.T) {
	ctx := context.Background()
	stateRepo, _, _ := newSyncRepos(t)

	_, err := NewImportStateUseCase(stateRepo).Execute(ctx, ImportStateInput{JSON: []byte("not json at all")})
	if !errors.Is(err, domainerror.ErrMalformedStateDocument) {
		t.Errorf("expected ErrMalformedStateDocument, got %v", err)
	}
}

func TestDecodeState_PaidDueWithBadPaidDate(t *testing.T) {
	doc := &StateDocument{
		Dues: []dueRecord{{
			ID:           "x",
			CustomerName: "Rahim",
			Amount:       decimal.NewFromInt(100),
			Date:         "2026-08-20",
			IsPaid:       true,
			PaidDate:     "whenever",
		}},
	}

	state, dropped := decodeState(doc)
	if dropped.Dues != 0 {
		t.Fatalf("expected the due to be kept, got %d drops", dropped.Dues)
	}
	if len(state.Dues) != 1 {
		t.Fatalf("expected 1 due, got %d", len(state.Dues))
	}

	d := state.Dues[0]
	if !d.IsPaid {
		t.Error("expected the due to stay paid")
	}
	// An unusable paid date falls back to the creation day.
	if d.PaidDay == nil || *d.PaidDay != valueobject.Day("2026-08-20") {
		t.Errorf("expected paid day 2026-08-20, got %v", d.PaidDay)
	}
}
