package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/shop-khata/backend/internal/application/adapter"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
)

// EntryKind names one of the deletable ledger collections.
type EntryKind string

const (
	KindIncome         EntryKind = "income"
	KindExpense        EntryKind = "expense"
	KindCashAdjustment EntryKind = "cash_adjustment"
)

// DeleteEntryInput represents the input for deleting a ledger entry.
type DeleteEntryInput struct {
	Kind EntryKind
	ID   uuid.UUID
}

// DeleteEntryUseCase removes entries from the ledger collections. Deleting an
// id that no longer exists is a no-op; stale delete clicks from the UI must
// not error.
type DeleteEntryUseCase struct {
	incomeRepo  adapter.IncomeRepository
	expenseRepo adapter.ExpenseRepository
	cashRepo    adapter.CashAdjustmentRepository
}

// NewDeleteEntryUseCase creates a new DeleteEntryUseCase instance.
func NewDeleteEntryUseCase(
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
	cashRepo adapter.CashAdjustmentRepository,
) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
		cashRepo:    cashRepo,
	}
}

// Execute deletes the entry from the kind's collection.
func (uc *DeleteEntryUseCase) Execute(ctx context.Context, input DeleteEntryInput) error {
	var err error
	switch input.Kind {
	case KindIncome:
		err = uc.incomeRepo.DeleteByID(ctx, input.ID)
	case KindExpense:
		err = uc.expenseRepo.DeleteByID(ctx, input.ID)
	case KindCashAdjustment:
		err = uc.cashRepo.DeleteByID(ctx, input.ID)
	default:
		return domainerror.NewLedgerError(
			domainerror.ErrCodeUnknownEntryKind,
			"unknown entry kind",
			domainerror.ErrUnknownEntryKind,
		)
	}

	if err != nil {
		return domainerror.NewLedgerError(
			domainerror.ErrCodePersistence,
			"failed to delete entry",
			err,
		)
	}
	return nil
}
