package sync

import (
	"context"
	"log/slog"

	"github.com/shop-khata/backend/internal/application/adapter"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
)

// RestoreInput represents the input for restoring from cloud storage.
type RestoreInput struct {
	AccessToken string
}

// RestoreUseCase downloads the latest cloud backup and imports it,
// replacing the local collections. The local PIN survives the restore.
type RestoreUseCase struct {
	drive    adapter.DriveService
	importer *ImportStateUseCase
}

// NewRestoreUseCase creates a new RestoreUseCase instance.
func NewRestoreUseCase(drive adapter.DriveService, importer *ImportStateUseCase) *RestoreUseCase {
	return &RestoreUseCase{drive: drive, importer: importer}
}

// Execute runs the restore.
func (uc *RestoreUseCase) Execute(ctx context.Context, input RestoreInput) (*ImportStateOutput, error) {
	raw, err := uc.drive.Download(ctx, input.AccessToken)
	if err != nil {
		return nil, domainerror.NewSyncError(
			domainerror.ErrCodeDriveUnavailable,
			"failed to download backup",
			err,
		)
	}

	out, err := uc.importer.Execute(ctx, ImportStateInput{JSON: raw})
	if err != nil {
		return nil, err
	}

	slog.Info("Backup restored", "dropped", out.Dropped.Total())
	return out, nil
}
