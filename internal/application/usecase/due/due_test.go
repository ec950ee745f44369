package due

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
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

func newDueRepos(t *testing.T) (adapter.DueRepository, adapter.IncomeRepository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.DueModel{}, &model.IncomeModel{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return persistence.NewDueRepository(db), persistence.NewIncomeRepository(db)
}

func TestCreateDueUseCase(t *testing.T) {
	ctx := context.Background()
	repo, _ := newDueRepos(t)
	useCase := NewCreateDueUseCase(repo)

	t.Run("rejects blank customer names", func(t *testing.T) {
		_, err := useCase.Execute(ctx, CreateDueInput{
			CustomerName: "   ",
			Amount:       decimal.NewFromInt(100),
		})
		if err == nil {
			t.Fatal("expected an error for a blank name")
		}
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		_, err := useCase.Execute(ctx, CreateDueInput{
			CustomerName: "Rahim",
			Amount:       decimal.Zero,
		})
		if err == nil {
			t.Fatal("expected an error for a zero amount")
		}
	})

	t.Run("creates an unpaid due", func(t *testing.T) {
		output, err := useCase.Execute(ctx, CreateDueInput{
			CustomerName: "Rahim",
			Phone:        "01712345678",
			Amount:       decimal.NewFromInt(100),
			Day:          valueobject.Day("2026-08-28"),
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Due.IsPaid {
			t.Error("expected a new due to start unpaid")
		}
		if output.Due.ID == uuid.Nil {
			t.Error("expected the due to carry an ID")
		}

		stored, err := repo.FindByID(ctx, output.Due.ID)
		if err != nil {
			t.Fatalf("expected the due to be stored, got %v", err)
		}
		if stored.CustomerName != "Rahim" || !stored.Amount.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected the stored due to match, got %s/%s", stored.CustomerName, stored.Amount)
		}
	})
}

func TestCollectDueUseCase(t *testing.T) {
	ctx := context.Background()
	repo, incomeRepo := newDueRepos(t)
	create := NewCreateDueUseCase(repo)
	collect := NewCollectDueUseCase(repo)

	created, err := create.Execute(ctx, CreateDueInput{
		CustomerName: "Fatema",
		Amount:       decimal.NewFromInt(320),
		Day:          valueobject.Day("2026-08-20"),
	})
	if err != nil {
		t.Fatalf("failed to create due: %v", err)
	}

	t.Run("marks paid and posts a due_collection income", func(t *testing.T) {
		output, err := collect.Execute(ctx, CollectDueInput{ID: created.Due.ID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !output.Due.IsPaid {
			t.Error("expected the due to be paid")
		}
		if output.Due.PaidDay == nil || *output.Due.PaidDay != valueobject.Today() {
			t.Errorf("expected paid day to be today, got %v", output.Due.PaidDay)
		}

		entries, err := incomeRepo.ListOnDay(ctx, valueobject.Today())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 income entry, got %d", len(entries))
		}
		if entries[0].Category != entity.IncomeDueCollection {
			t.Errorf("expected due_collection income, got %s", entries[0].Category)
		}
		if !entries[0].Amount.Equal(decimal.NewFromInt(320)) {
			t.Errorf("expected income of 320, got %s", entries[0].Amount)
		}
	})

	t.Run("collecting again is a conflict", func(t *testing.T) {
		_, err := collect.Execute(ctx, CollectDueInput{ID: created.Due.ID})
		if !errors.Is(err, domainerror.ErrDueAlreadyCollected) {
			t.Errorf("expected ErrDueAlreadyCollected, got %v", err)
		}
	})
}

func TestDeleteDueUseCase(t *testing.T) {
	ctx := context.Background()
	repo, _ := newDueRepos(t)
	create := NewCreateDueUseCase(repo)
	collect := NewCollectDueUseCase(repo)
	del := NewDeleteDueUseCase(repo)

	created, err := create.Execute(ctx, CreateDueInput{
		CustomerName: "Karim",
		Amount:       decimal.NewFromInt(75),
	})
	if err != nil {
		t.Fatalf("failed to create due: %v", err)
	}

	t.Run("unpaid dues are not deletable", func(t *testing.T) {
		err := del.Execute(ctx, DeleteDueInput{ID: created.Due.ID})
		if !errors.Is(err, domainerror.ErrDueNotCollected) {
			t.Fatalf("expected ErrDueNotCollected, got %v", err)
		}

		// Still present.
		if _, err := repo.FindByID(ctx, created.Due.ID); err != nil {
			t.Errorf("expected the due to survive, got %v", err)
		}
	})

	t.Run("collected dues can be removed from history", func(t *testing.T) {
		if _, err := collect.Execute(ctx, CollectDueInput{ID: created.Due.ID}); err != nil {
			t.Fatalf("failed to collect due: %v", err)
		}
		if err := del.Execute(ctx, DeleteDueInput{ID: created.Due.ID}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		_, err := repo.FindByID(ctx, created.Due.ID)
		if !errors.Is(err, domainerror.ErrDueNotFound) {
			t.Errorf("expected ErrDueNotFound after deletion, got %v", err)
		}
	})
}

func TestListDuesUseCase(t *testing.T) {
	ctx := context.Background()
	repo, _ := newDueRepos(t)
	create := NewCreateDueUseCase(repo)
	list := NewListDuesUseCase(repo)

	names := []string{"Abdul Karim", "Karima Begum", "Jashim Uddin"}
	for i, name := range names {
		_, err := create.Execute(ctx, CreateDueInput{
			CustomerName: name,
			Amount:       decimal.NewFromInt(int64(100 * (i + 1))),
			Day:          valueobject.Day("2026-08-28"),
		})
		if err != nil {
			t.Fatalf("failed to create due for %s: %v", name, err)
		}
	}

	t.Run("lists unpaid with the outstanding total", func(t *testing.T) {
		output, err := list.Execute(ctx, ListDuesInput{Paid: false})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(output.Dues) != 3 {
			t.Errorf("expected 3 dues, got %d", len(output.Dues))
		}
		if !output.TotalOutstanding.Equal(decimal.NewFromInt(600)) {
			t.Errorf("expected 600 outstanding, got %s", output.TotalOutstanding)
		}
	})

	t.Run("search overrides the paid filter", func(t *testing.T) {
		output, err := list.Execute(ctx, ListDuesInput{Search: "karim"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(output.Dues) != 2 {
			t.Errorf("expected 2 matches, got %d", len(output.Dues))
		}
	})
}
