package due

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/shop-khata/backend/internal/application/adapter"
	"github.com/shop-khata/backend/internal/domain/entity"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
	"github.com/shop-khata/backend/internal/domain/valueobject"
)

// CollectDueInput represents the input for collecting a customer due.
type CollectDueInput struct {
	ID uuid.UUID
}

// CollectDueOutput represents the output of collecting a customer due.
type CollectDueOutput struct {
	Due *entity.CustomerDue
}

// CollectDueUseCase marks a due as paid and records the matching income
// entry. Both writes happen in one transaction so the paid flag and the
// collection income can never diverge.
type CollectDueUseCase struct {
	dueRepo adapter.DueRepository
}

// NewCollectDueUseCase creates a new CollectDueUseCase instance.
func NewCollectDueUseCase(dueRepo adapter.DueRepository) *CollectDueUseCase {
	return &CollectDueUseCase{dueRepo: dueRepo}
}

// Execute collects the due. The income entry carries the due's full amount
// under the due-collection category, dated the collection day.
func (uc *CollectDueUseCase) Execute(ctx context.Context, input CollectDueInput) (*CollectDueOutput, error) {
	existing, err := uc.dueRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if existing.IsPaid {
		return nil, domainerror.NewDueError(
			domainerror.ErrCodeDueAlreadyCollected,
			"due is already collected",
			domainerror.ErrDueAlreadyCollected,
		)
	}

	today := valueobject.Today()
	income := entity.NewIncomeEntry(entity.IncomeDueCollection, existing.Amount, today)

	collected, err := uc.dueRepo.Collect(ctx, input.ID, today, income)
	if err != nil {
		return nil, fmt.Errorf("failed to collect due: %w", err)
	}

	return &CollectDueOutput{Due: collected}, nil
}
