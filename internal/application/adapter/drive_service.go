package adapter

import "context"

// DriveService stores and retrieves the full-state backup document in the
// user's cloud drive. The OAuth access token comes from the external auth
// collaborator with each call; the core never performs the OAuth flow.
type DriveService interface {
	// Upload writes the backup document, replacing any previous one.
	Upload(ctx context.Context, accessToken string, data []byte) error

	// Download retrieves the latest backup document, or ErrBackupNotFound.
	Download(ctx context.Context, accessToken string) ([]byte, error)
}
