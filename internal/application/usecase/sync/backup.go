package sync

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shop-khata/backend/internal/application/adapter"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
)

// BackupInput represents the input for pushing a backup to cloud storage.
type BackupInput struct {
	// AccessToken is the user's OAuth token for the storage provider.
	AccessToken string
}

// BackupOutput represents the output of a cloud backup.
type BackupOutput struct {
	Bytes int
}

// BackupUseCase exports the state and pushes it to the user's cloud
// storage, overwriting the previous backup. One shop, one backup document.
type BackupUseCase struct {
	stateRepo adapter.StateRepository
	drive     adapter.DriveService
}

// NewBackupUseCase creates a new BackupUseCase instance.
func NewBackupUseCase(stateRepo adapter.StateRepository, drive adapter.DriveService) *BackupUseCase {
	return &BackupUseCase{stateRepo: stateRepo, drive: drive}
}

// Execute runs the backup.
func (uc *BackupUseCase) Execute(ctx context.Context, input BackupInput) (*BackupOutput, error) {
	state, err := uc.stateRepo.Export(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read shop state: %w", err)
	}

	raw, err := marshalDocument(encodeState(state))
	if err != nil {
		return nil, fmt.Errorf("failed to encode state document: %w", err)
	}

	if err := uc.drive.Upload(ctx, input.AccessToken, raw); err != nil {
		return nil, domainerror.NewSyncError(
			domainerror.ErrCodeDriveUnavailable,
			"failed to upload backup",
			err,
		)
	}

	slog.Info("Backup uploaded", "bytes", len(raw))
	return &BackupOutput{Bytes: len(raw)}, nil
}
