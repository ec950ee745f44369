package ledger

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shop-khata/backend/internal/application/adapter"
	"github.com/shop-khata/backend/internal/domain/entity"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
	"github.com/shop-khata/backend/internal/domain/valueobject"
)

// AddExpenseInput represents the input for recording an expense.
type AddExpenseInput struct {
	Name   string
	Amount decimal.Decimal
	Day    valueobject.Day
}

// AddExpenseOutput represents the output of recording an expense.
type AddExpenseOutput struct {
	Expense *entity.Expense
}

// AddExpenseUseCase handles expense creation.
type AddExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewAddExpenseUseCase creates a new AddExpenseUseCase instance.
func NewAddExpenseUseCase(expenseRepo adapter.ExpenseRepository) *AddExpenseUseCase {
	return &AddExpenseUseCase{expenseRepo: expenseRepo}
}

// Execute validates the input and stores the expense.
func (uc *AddExpenseUseCase) Execute(ctx context.Context, input AddExpenseInput) (*AddExpenseOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeEmptyExpenseName,
			"expense name is required",
			domainerror.ErrEmptyExpenseName,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"expense amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}

	if input.Day == "" {
		input.Day = valueobject.Today()
	}

	expense := entity.NewExpense(name, input.Amount, input.Day)
	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodePersistence,
			"failed to store expense",
			err,
		)
	}

	return &AddExpenseOutput{Expense: expense}, nil
}
