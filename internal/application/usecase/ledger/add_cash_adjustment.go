package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/shop-khata/backend/internal/application/adapter"
	"github.com/shop-khata/backend/internal/domain/entity"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
	"github.com/shop-khata/backend/internal/domain/valueobject"
)

// AddCashAdjustmentInput represents the input for recording a cash-box adjustment.
type AddCashAdjustmentInput struct {
	Amount    decimal.Decimal
	Direction entity.CashDirection
	Note      string
	Day       valueobject.Day
}

// AddCashAdjustmentOutput represents the output of recording a cash-box adjustment.
type AddCashAdjustmentOutput struct {
	Adjustment *entity.CashAdjustment
}

// AddCashAdjustmentUseCase handles cash-box adjustment creation.
type AddCashAdjustmentUseCase struct {
	cashRepo adapter.CashAdjustmentRepository
}

// NewAddCashAdjustmentUseCase creates a new AddCashAdjustmentUseCase instance.
func NewAddCashAdjustmentUseCase(cashRepo adapter.CashAdjustmentRepository) *AddCashAdjustmentUseCase {
	return &AddCashAdjustmentUseCase{cashRepo: cashRepo}
}

// Execute validates the input and stores the adjustment.
func (uc *AddCashAdjustmentUseCase) Execute(ctx context.Context, input AddCashAdjustmentInput) (*AddCashAdjustmentOutput, error) {
	if !entity.IsValidCashDirection(input.Direction) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidCashDirection,
			"cash direction must be 'in' or 'out'",
			domainerror.ErrInvalidCashDirection,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"adjustment amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}

	if input.Day == "" {
		input.Day = valueobject.Today()
	}

	adjustment := entity.NewCashAdjustment(input.Amount, input.Direction, input.Note, input.Day)
	if err := uc.cashRepo.Create(ctx, adjustment); err != nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodePersistence,
			"failed to store cash adjustment",
			err,
		)
	}

	return &AddCashAdjustmentOutput{Adjustment: adjustment}, nil
}
