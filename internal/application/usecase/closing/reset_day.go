package closing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shop-khata/backend/internal/application/adapter"
	"github.com/shop-khata/backend/internal/domain/valueobject"
)

// ResetDayInput represents the input for starting a day's closing over.
type ResetDayInput struct {
	Day valueobject.Day
}

// ResetDayUseCase deletes every slot entry for a day, returning it to an
// empty closing. Idempotent: resetting an already-empty day changes nothing.
type ResetDayUseCase struct {
	closingRepo adapter.NightClosingRepository
}

// NewResetDayUseCase creates a new ResetDayUseCase instance.
func NewResetDayUseCase(closingRepo adapter.NightClosingRepository) *ResetDayUseCase {
	return &ResetDayUseCase{closingRepo: closingRepo}
}

// Execute clears the day.
func (uc *ResetDayUseCase) Execute(ctx context.Context, input ResetDayInput) error {
	day := input.Day
	if day == "" {
		day = valueobject.Today()
	}

	if err := uc.closingRepo.DeleteAllOnDay(ctx, day); err != nil {
		return fmt.Errorf("failed to reset closing day: %w", err)
	}

	slog.Info("Night closing reset", "day", day.String())
	return nil
}
