// Package closing contains the night-closing state machine use cases.
//
// A day's closing is a fixed set of balance slots, one per category. Each
// slot is upsertable: recording a category that already has an entry for the
// day replaces its amount instead of appending a second row. The day is
// complete once every slot has been recorded at least once, which is the
// gate the dashboard and report surfaces consume.
package closing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shop-khata/backend/internal/application/adapter"
	"github.com/shop-khata/backend/internal/domain/entity"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
	"github.com/shop-khata/backend/internal/domain/valueobject"
)

// RecordEntryInput represents the input for recording a closing slot.
type RecordEntryInput struct {
	Day      valueobject.Day
	Category entity.ClosingCategory
	Amount   decimal.Decimal
}

// RecordEntryOutput represents the output of recording a closing slot.
type RecordEntryOutput struct {
	Entry *entity.NightClosingEntry
}

// RecordEntryUseCase handles the per-slot upsert.
type RecordEntryUseCase struct {
	closingRepo adapter.NightClosingRepository
}

// NewRecordEntryUseCase creates a new RecordEntryUseCase instance.
func NewRecordEntryUseCase(closingRepo adapter.NightClosingRepository) *RecordEntryUseCase {
	return &RecordEntryUseCase{closingRepo: closingRepo}
}

// Execute validates and upserts the slot. Re-recording the same
// (day, category) replaces the stored amount; it never creates a duplicate.
func (uc *RecordEntryUseCase) Execute(ctx context.Context, input RecordEntryInput) (*RecordEntryOutput, error) {
	if !entity.IsValidClosingCategory(input.Category) {
		return nil, domainerror.NewClosingError(
			domainerror.ErrCodeInvalidClosingCategory,
			fmt.Sprintf("unknown closing category %q", input.Category),
			domainerror.ErrInvalidClosingCategory,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewClosingError(
			domainerror.ErrCodeInvalidClosingAmount,
			"closing amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}

	if input.Day == "" {
		input.Day = valueobject.Today()
	}

	entry, err := uc.closingRepo.Upsert(ctx, entity.NewNightClosingEntry(input.Category, input.Amount, input.Day))
	if err != nil {
		return nil, fmt.Errorf("failed to record closing slot: %w", err)
	}

	return &RecordEntryOutput{Entry: entry}, nil
}
