package closing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/shop-khata/backend/internal/application/adapter"
)

// DeleteEntryInput represents the input for removing one closing slot.
type DeleteEntryInput struct {
	ID uuid.UUID
}

// DeleteEntryUseCase removes a single slot entry, decrementing the day's
// progress. Deleting an absent id is a no-op.
type DeleteEntryUseCase struct {
	closingRepo adapter.NightClosingRepository
}

// NewDeleteEntryUseCase creates a new DeleteEntryUseCase instance.
func NewDeleteEntryUseCase(closingRepo adapter.NightClosingRepository) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{closingRepo: closingRepo}
}

// Execute deletes the slot entry.
func (uc *DeleteEntryUseCase) Execute(ctx context.Context, input DeleteEntryInput) error {
	if err := uc.closingRepo.DeleteByID(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete closing entry: %w", err)
	}
	return nil
}
