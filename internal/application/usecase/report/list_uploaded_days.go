package report

import (
	"context"
	"fmt"

	"github.com/shop-khata/backend/internal/application/adapter"
	"github.com/shop-khata/backend/internal/domain/valueobject"
)

// ListUploadedDaysOutput represents the output of listing uploaded markers.
type ListUploadedDaysOutput struct {
	Days []valueobject.Day
}

// ListUploadedDaysUseCase lists every day whose report has been uploaded.
type ListUploadedDaysUseCase struct {
	uploadedRepo adapter.UploadedDayRepository
}

// NewListUploadedDaysUseCase creates a new ListUploadedDaysUseCase instance.
func NewListUploadedDaysUseCase(uploadedRepo adapter.UploadedDayRepository) *ListUploadedDaysUseCase {
	return &ListUploadedDaysUseCase{uploadedRepo: uploadedRepo}
}

// Execute lists the uploaded days.
func (uc *ListUploadedDaysUseCase) Execute(ctx context.Context) (*ListUploadedDaysOutput, error) {
	days, err := uc.uploadedRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list uploaded days: %w", err)
	}
	return &ListUploadedDaysOutput{Days: days}, nil
}
