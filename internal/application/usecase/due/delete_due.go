package due

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/shop-khata/backend/internal/application/adapter"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
)

// DeleteDueInput represents the input for deleting a collected due.
type DeleteDueInput struct {
	ID uuid.UUID
}

// DeleteDueUseCase removes a due from the paid history. Unpaid dues are
// never deletable; they must be collected first.
type DeleteDueUseCase struct {
	dueRepo adapter.DueRepository
}

// NewDeleteDueUseCase creates a new DeleteDueUseCase instance.
func NewDeleteDueUseCase(dueRepo adapter.DueRepository) *DeleteDueUseCase {
	return &DeleteDueUseCase{dueRepo: dueRepo}
}

// Execute deletes the due after checking it has been collected.
func (uc *DeleteDueUseCase) Execute(ctx context.Context, input DeleteDueInput) error {
	existing, err := uc.dueRepo.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}

	if !existing.IsPaid {
		return domainerror.NewDueError(
			domainerror.ErrCodeDueNotCollected,
			"only collected dues can be deleted",
			domainerror.ErrDueNotCollected,
		)
	}

	if err := uc.dueRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete due: %w", err)
	}
	return nil
}
