package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shop-khata/backend/internal/domain/entity"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
	"github.com/shop-khata/backend/internal/domain/valueobject"
)

func TestDueRepository_Collect(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewDueRepository(db)
	incomeRepo := NewIncomeRepository(db)
	day := valueobject.Day("2026-08-20")
	paidDay := valueobject.Day("2026-08-28")

	due := entity.NewCustomerDue("Rahim", "01712345678", decimal.NewFromInt(450), "", "", day)
	if err := repo.Create(ctx, due); err != nil {
		t.Fatalf("failed to create due: %v", err)
	}

	t.Run("marks paid and stores the income entry together", func(t *testing.T) {
		income := entity.NewIncomeEntry(entity.IncomeDueCollection, due.Amount, paidDay)
		collected, err := repo.Collect(ctx, due.ID, paidDay, income)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !collected.IsPaid {
			t.Error("expected due to be paid")
		}
		if collected.PaidDay == nil || *collected.PaidDay != paidDay {
			t.Errorf("expected paid day %s, got %v", paidDay, collected.PaidDay)
		}

		total, err := incomeRepo.SumOnDay(ctx, paidDay)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !total.Equal(decimal.NewFromInt(450)) {
			t.Errorf("expected collection income of 450, got %s", total)
		}
	})

	t.Run("collecting twice fails without a second income entry", func(t *testing.T) {
		income := entity.NewIncomeEntry(entity.IncomeDueCollection, due.Amount, paidDay)
		_, err := repo.Collect(ctx, due.ID, paidDay, income)
		if !errors.Is(err, domainerror.ErrDueAlreadyCollected) {
			t.Fatalf("expected ErrDueAlreadyCollected, got %v", err)
		}

		total, err := incomeRepo.SumOnDay(ctx, paidDay)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !total.Equal(decimal.NewFromInt(450)) {
			t.Errorf("expected the income total to stay 450, got %s", total)
		}
	})

	t.Run("collecting an absent due fails", func(t *testing.T) {
		income := entity.NewIncomeEntry(entity.IncomeDueCollection, decimal.NewFromInt(1), paidDay)
		_, err := repo.Collect(ctx, uuid.New(), paidDay, income)
		if !errors.Is(err, domainerror.ErrDueNotFound) {
			t.Errorf("expected ErrDueNotFound, got %v", err)
		}
	})
}

func TestDueRepository_SumUnpaid(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewDueRepository(db)
	day := valueobject.Day("2026-08-28")

	first := entity.NewCustomerDue("Karim", "", decimal.NewFromInt(100), "", "", day)
	second := entity.NewCustomerDue("Fatema", "", decimal.NewFromInt(250), "", "", day)
	for _, d := range []*entity.CustomerDue{first, second} {
		if err := repo.Create(ctx, d); err != nil {
			t.Fatalf("failed to create due: %v", err)
		}
	}

	total, err := repo.SumUnpaid(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !total.Equal(decimal.NewFromInt(350)) {
		t.Errorf("expected 350 outstanding, got %s", total)
	}

	// Collected dues drop out of the outstanding total.
	income := entity.NewIncomeEntry(entity.IncomeDueCollection, first.Amount, day)
	if _, err := repo.Collect(ctx, first.ID, day, income); err != nil {
		t.Fatalf("failed to collect due: %v", err)
	}

	total, err = repo.SumUnpaid(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !total.Equal(decimal.NewFromInt(250)) {
		t.Errorf("expected 250 outstanding after collection, got %s", total)
	}
}

func TestDueRepository_Search(t *testing.T) {
	ctx := context.Background()
	repo := NewDueRepository(newTestDB(t))
	day := valueobject.Day("2026-08-28")

	dues := []*entity.CustomerDue{
		entity.NewCustomerDue("Abdul Karim", "01711111111", decimal.NewFromInt(100), "", "", day),
		entity.NewCustomerDue("Karima Begum", "01822222222", decimal.NewFromInt(200), "", "", day),
		entity.NewCustomerDue("Jashim Uddin", "01933333333", decimal.NewFromInt(300), "", "", day),
	}
	for _, d := range dues {
		if err := repo.Create(ctx, d); err != nil {
			t.Fatalf("failed to create due: %v", err)
		}
	}

	t.Run("matches names case-insensitively", func(t *testing.T) {
		found, err := repo.Search(ctx, "karim")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(found) != 2 {
			t.Errorf("expected 2 matches, got %d", len(found))
		}
	})

	t.Run("matches phone fragments", func(t *testing.T) {
		found, err := repo.Search(ctx, "0193")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(found) != 1 {
			t.Fatalf("expected 1 match, got %d", len(found))
		}
		if found[0].CustomerName != "Jashim Uddin" {
			t.Errorf("expected Jashim Uddin, got %s", found[0].CustomerName)
		}
	})

	t.Run("no matches is an empty result", func(t *testing.T) {
		found, err := repo.Search(ctx, "nobody")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(found) != 0 {
			t.Errorf("expected no matches, got %d", len(found))
		}
	})
}
