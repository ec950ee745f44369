// Package ledger contains the income, expense, and cash-box use cases.
package ledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shop-khata/backend/internal/application/adapter"
	"github.com/shop-khata/backend/internal/domain/entity"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
	"github.com/shop-khata/backend/internal/domain/valueobject"
)

// AddIncomeInput represents the input for recording an income entry.
type AddIncomeInput struct {
	Category entity.IncomeCategory
	Amount   decimal.Decimal
	Day      valueobject.Day
}

// AddIncomeOutput represents the output of recording an income entry.
type AddIncomeOutput struct {
	Entry *entity.IncomeEntry
}

// AddIncomeUseCase handles income entry creation.
type AddIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewAddIncomeUseCase creates a new AddIncomeUseCase instance.
func NewAddIncomeUseCase(incomeRepo adapter.IncomeRepository) *AddIncomeUseCase {
	return &AddIncomeUseCase{incomeRepo: incomeRepo}
}

// Execute validates the input and stores the entry. Nothing is stored when
// validation fails.
func (uc *AddIncomeUseCase) Execute(ctx context.Context, input AddIncomeInput) (*AddIncomeOutput, error) {
	if !entity.IsValidIncomeCategory(input.Category) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidIncomeCategory,
			fmt.Sprintf("unknown income category %q", input.Category),
			domainerror.ErrInvalidIncomeCategory,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"income amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}

	if input.Day == "" {
		input.Day = valueobject.Today()
	}

	entry := entity.NewIncomeEntry(input.Category, input.Amount, input.Day)
	if err := uc.incomeRepo.Create(ctx, entry); err != nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodePersistence,
			"failed to store income entry",
			err,
		)
	}

	return &AddIncomeOutput{Entry: entry}, nil
}
