package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shop-khata/backend/internal/application/adapter"
	"github.com/shop-khata/backend/internal/domain/valueobject"
)

// MarkUploadedInput represents the input for marking a day's report as
// uploaded to the remote sheet.
type MarkUploadedInput struct {
	Day valueobject.Day
}

// MarkUploadedUseCase records the uploaded marker for a day. Marking the
// same day twice is a no-op.
type MarkUploadedUseCase struct {
	uploadedRepo adapter.UploadedDayRepository
}

// NewMarkUploadedUseCase creates a new MarkUploadedUseCase instance.
func NewMarkUploadedUseCase(uploadedRepo adapter.UploadedDayRepository) *MarkUploadedUseCase {
	return &MarkUploadedUseCase{uploadedRepo: uploadedRepo}
}

// Execute records the marker.
func (uc *MarkUploadedUseCase) Execute(ctx context.Context, input MarkUploadedInput) error {
	day := input.Day
	if day == "" {
		day = valueobject.Today()
	}

	if err := uc.uploadedRepo.Add(ctx, day); err != nil {
		return fmt.Errorf("failed to mark day uploaded: %w", err)
	}

	slog.Info("Report marked uploaded", "day", day.String())
	return nil
}
