package due

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/shop-khata/backend/internal/application/adapter"
	"github.com/shop-khata/backend/internal/domain/entity"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
)

// UpdateDueInput represents the input for editing a due's details. Nil
// fields are left untouched. Payment state is not editable here; collection
// has its own use case.
type UpdateDueInput struct {
	ID     uuid.UUID
	Update adapter.DueUpdate
}

// UpdateDueOutput represents the output of editing a due.
type UpdateDueOutput struct {
	Due *entity.CustomerDue
}

// UpdateDueUseCase handles partial edits of a due's descriptive fields.
type UpdateDueUseCase struct {
	dueRepo adapter.DueRepository
}

// NewUpdateDueUseCase creates a new UpdateDueUseCase instance.
func NewUpdateDueUseCase(dueRepo adapter.DueRepository) *UpdateDueUseCase {
	return &UpdateDueUseCase{dueRepo: dueRepo}
}

// Execute applies the update.
func (uc *UpdateDueUseCase) Execute(ctx context.Context, input UpdateDueInput) (*UpdateDueOutput, error) {
	if input.Update.CustomerName != nil {
		name := strings.TrimSpace(*input.Update.CustomerName)
		if name == "" {
			return nil, domainerror.NewDueError(
				domainerror.ErrCodeEmptyCustomerName,
				"customer name must not be empty",
				domainerror.ErrEmptyCustomerName,
			)
		}
		input.Update.CustomerName = &name
	}

	if input.Update.Amount != nil && !input.Update.Amount.IsPositive() {
		return nil, domainerror.NewDueError(
			domainerror.ErrCodeInvalidDueAmount,
			"due amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}

	updated, err := uc.dueRepo.UpdateFields(ctx, input.ID, input.Update)
	if err != nil {
		return nil, fmt.Errorf("failed to update due: %w", err)
	}

	return &UpdateDueOutput{Due: updated}, nil
}
