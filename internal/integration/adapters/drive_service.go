package adapters

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/shop-khata/backend/internal/application/adapter"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
)

// backupFileName is the fixed name of the backup document inside the app
// data folder. One shop, one backup.
const backupFileName = "shop-khata-backup.json"

// driveService implements the adapter.DriveService interface using the
// Google Drive appDataFolder, which is private to this application.
type driveService struct{}

// NewDriveService creates a new Drive service instance.
func NewDriveService() adapter.DriveService {
	return &driveService{}
}

// Upload writes the backup document, replacing any previous one.
func (s *driveService) Upload(ctx context.Context, accessToken string, data []byte) error {
	svc, err := s.client(ctx, accessToken)
	if err != nil {
		return err
	}

	existingID, err := s.findBackup(svc)
	if err != nil {
		return err
	}

	if existingID != "" {
		_, err = svc.Files.
			Update(existingID, &drive.File{}).
			Media(bytes.NewReader(data)).
			Context(ctx).
			Do()
		if err != nil {
			return fmt.Errorf("failed to update backup file: %w", err)
		}
		return nil
	}

	_, err = svc.Files.
		Create(&drive.File{
			Name:    backupFileName,
			Parents: []string{"appDataFolder"},
		}).
		Media(bytes.NewReader(data)).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	return nil
}

// Download retrieves the latest backup document.
func (s *driveService) Download(ctx context.Context, accessToken string) ([]byte, error) {
	svc, err := s.client(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	fileID, err := s.findBackup(svc)
	if err != nil {
		return nil, err
	}
	if fileID == "" {
		return nil, domainerror.ErrBackupNotFound
	}

	resp, err := svc.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download backup file: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup file: %w", err)
	}
	return data, nil
}

// client builds a Drive client from the caller's OAuth access token.
func (s *driveService) client(ctx context.Context, accessToken string) (*drive.Service, error) {
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	svc, err := drive.NewService(ctx, option.WithTokenSource(source))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive client: %w", err)
	}
	return svc, nil
}

// findBackup returns the id of the backup file, or empty when none exists.
func (s *driveService) findBackup(svc *drive.Service) (string, error) {
	list, err := svc.Files.List().
		Spaces("appDataFolder").
		Q(fmt.Sprintf("name = '%s'", backupFileName)).
		Fields("files(id)").
		PageSize(1).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to list backup files: %w", err)
	}
	if len(list.Files) == 0 {
		return "", nil
	}
	return list.Files[0].Id, nil
}
