package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shop-khata/backend/internal/application/adapter"
	"github.com/shop-khata/backend/internal/domain/entity"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
	"github.com/shop-khata/backend/internal/domain/valueobject"
	"github.com/shop-khata/backend/internal/integration/persistence/model"
)

// settingsRepository implements the adapter.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository instance.
func NewSettingsRepository(db *gorm.DB) adapter.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// Get retrieves the singleton settings row.
func (r *settingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	var settingsModel model.SettingsModel
	result := r.db.WithContext(ctx).First(&settingsModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSettingsNotFound
		}
		return nil, result.Error
	}
	return settingsModel.ToEntity(), nil
}

// Save writes the settings row, creating it when absent.
func (r *settingsRepository) Save(ctx context.Context, settings *entity.Settings) error {
	settingsModel := model.SettingsFromEntity(settings)
	result := r.db.WithContext(ctx).Save(settingsModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// uploadedDayRepository implements the adapter.UploadedDayRepository interface.
type uploadedDayRepository struct {
	db *gorm.DB
}

// NewUploadedDayRepository creates a new uploaded day repository instance.
func NewUploadedDayRepository(db *gorm.DB) adapter.UploadedDayRepository {
	return &uploadedDayRepository{
		db: db,
	}
}

// Add marks a day as uploaded. Adding an already-present day is a no-op.
func (r *uploadedDayRepository) Add(ctx context.Context, day valueobject.Day) error {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(model.UploadedDayFromDay(day))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Contains reports whether a day has been marked.
func (r *uploadedDayRepository) Contains(ctx context.Context, day valueobject.Day) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.UploadedDayModel{}).
		Where("day = ?", day.String()).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// List returns all marked days, newest first.
func (r *uploadedDayRepository) List(ctx context.Context) ([]valueobject.Day, error) {
	var dayModels []model.UploadedDayModel
	result := r.db.WithContext(ctx).
		Order("day DESC").
		Find(&dayModels)
	if result.Error != nil {
		return nil, result.Error
	}

	days := make([]valueobject.Day, len(dayModels))
	for i, m := range dayModels {
		days[i] = m.ToDay()
	}
	return days, nil
}
