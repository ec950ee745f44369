// Package due contains the customer due lifecycle use cases.
package due

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shop-khata/backend/internal/application/adapter"
	"github.com/shop-khata/backend/internal/domain/entity"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
	"github.com/shop-khata/backend/internal/domain/valueobject"
)

// CreateDueInput represents the input for recording a new customer due.
type CreateDueInput struct {
	CustomerName string
	Phone        string
	Amount       decimal.Decimal
	Note         string
	PhotoRef     string
	Day          valueobject.Day
}

// CreateDueOutput represents the output of recording a customer due.
type CreateDueOutput struct {
	Due *entity.CustomerDue
}

// CreateDueUseCase handles recording an unpaid customer due.
type CreateDueUseCase struct {
	dueRepo adapter.DueRepository
}

// NewCreateDueUseCase creates a new CreateDueUseCase instance.
func NewCreateDueUseCase(dueRepo adapter.DueRepository) *CreateDueUseCase {
	return &CreateDueUseCase{dueRepo: dueRepo}
}

// Execute validates and persists the due. New dues always start unpaid.
func (uc *CreateDueUseCase) Execute(ctx context.Context, input CreateDueInput) (*CreateDueOutput, error) {
	name := strings.TrimSpace(input.CustomerName)
	if name == "" {
		return nil, domainerror.NewDueError(
			domainerror.ErrCodeEmptyCustomerName,
			"customer name must not be empty",
			domainerror.ErrEmptyCustomerName,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewDueError(
			domainerror.ErrCodeInvalidDueAmount,
			"due amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}

	if input.Day == "" {
		input.Day = valueobject.Today()
	}

	due := entity.NewCustomerDue(name, input.Phone, input.Amount, input.Note, input.PhotoRef, input.Day)
	if err := uc.dueRepo.Create(ctx, due); err != nil {
		return nil, fmt.Errorf("failed to create due: %w", err)
	}

	return &CreateDueOutput{Due: due}, nil
}
