package closing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shop-khata/backend/internal/application/adapter"
	"github.com/shop-khata/backend/internal/domain/entity"
	"github.com/shop-khata/backend/internal/domain/valueobject"
)

// GetDayStatusInput represents the input for reading a day's closing state.
type GetDayStatusInput struct {
	Day valueobject.Day
}

// GetDayStatusOutput is the full closing state for one day.
type GetDayStatusOutput struct {
	Day valueobject.Day

	// Entries maps each recorded category to its latest entry. Unrecorded
	// categories are absent, not zero.
	Entries map[entity.ClosingCategory]*entity.NightClosingEntry

	// Recorded is the number of distinct categories recorded so far.
	Recorded int

	// Total is the number of slots a complete day requires.
	Total int

	// Complete is true once every slot has been recorded at least once.
	Complete bool

	// WalletSubtotal is the sum over the mobile-banking slots only.
	WalletSubtotal decimal.Decimal
}

// GetDayStatusUseCase reads the per-day closing state.
type GetDayStatusUseCase struct {
	closingRepo adapter.NightClosingRepository
}

// NewGetDayStatusUseCase creates a new GetDayStatusUseCase instance.
func NewGetDayStatusUseCase(closingRepo adapter.NightClosingRepository) *GetDayStatusUseCase {
	return &GetDayStatusUseCase{closingRepo: closingRepo}
}

// Execute reads the state for the day.
func (uc *GetDayStatusUseCase) Execute(ctx context.Context, input GetDayStatusInput) (*GetDayStatusOutput, error) {
	day := input.Day
	if day == "" {
		day = valueobject.Today()
	}

	entries, err := uc.closingRepo.ListOnDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list closing entries: %w", err)
	}

	byCategory := make(map[entity.ClosingCategory]*entity.NightClosingEntry, len(entries))
	for _, e := range entries {
		byCategory[e.Category] = e
	}

	subtotal := decimal.Zero
	for _, c := range entity.WalletCategories() {
		if e, ok := byCategory[c]; ok {
			subtotal = subtotal.Add(e.Amount)
		}
	}

	total := len(entity.ClosingCategories())
	return &GetDayStatusOutput{
		Day:            day,
		Entries:        byCategory,
		Recorded:       len(byCategory),
		Total:          total,
		Complete:       len(byCategory) >= total,
		WalletSubtotal: subtotal,
	}, nil
}
