package adapter

import (
	"context"

	"github.com/shop-khata/backend/internal/domain/entity"
	"github.com/shop-khata/backend/internal/domain/valueobject"
)

// SettingsRepository persists the singleton shop settings.
type SettingsRepository interface {
	// Get retrieves the settings row, or ErrSettingsNotFound when the store
	// has never been seeded.
	Get(ctx context.Context) (*entity.Settings, error)

	// Save writes the settings row, creating it when absent.
	Save(ctx context.Context, settings *entity.Settings) error
}

// UploadedDayRepository persists the set of days whose report has been
// durably archived. The set is append-only.
type UploadedDayRepository interface {
	// Add marks a day as uploaded. Adding an already-present day is a no-op.
	Add(ctx context.Context, day valueobject.Day) error

	// Contains reports whether a day has been marked.
	Contains(ctx context.Context, day valueobject.Day) (bool, error)

	// List returns all marked days, newest first.
	List(ctx context.Context) ([]valueobject.Day, error)
}
