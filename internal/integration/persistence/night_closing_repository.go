package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shop-khata/backend/internal/application/adapter"
	"github.com/shop-khata/backend/internal/domain/entity"
	"github.com/shop-khata/backend/internal/domain/valueobject"
	"github.com/shop-khata/backend/internal/integration/persistence/model"
)

// nightClosingRepository implements the adapter.NightClosingRepository interface.
type nightClosingRepository struct {
	db *gorm.DB
}

// NewNightClosingRepository creates a new night closing repository instance.
func NewNightClosingRepository(db *gorm.DB) adapter.NightClosingRepository {
	return &nightClosingRepository{
		db: db,
	}
}

// Upsert records an amount for a (day, category) slot. The read-then-write
// runs in a transaction so concurrent records of the same slot cannot both
// insert.
func (r *nightClosingRepository) Upsert(ctx context.Context, entry *entity.NightClosingEntry) (*entity.NightClosingEntry, error) {
	var stored model.NightClosingModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.NightClosingModel
		result := tx.
			Where("day = ? AND category = ?", entry.Day.String(), string(entry.Category)).
			First(&existing)

		if result.Error == nil {
			existing.Amount = entry.Amount
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			stored = existing
			return nil
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		created := model.NightClosingFromEntity(entry)
		if err := tx.Create(created).Error; err != nil {
			return err
		}
		stored = *created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return stored.ToEntity(), nil
}

// ListOnDay retrieves all slot entries for a day.
func (r *nightClosingRepository) ListOnDay(ctx context.Context, day valueobject.Day) ([]*entity.NightClosingEntry, error) {
	var closingModels []model.NightClosingModel
	result := r.db.WithContext(ctx).
		Where("day = ?", day.String()).
		Order("category ASC").
		Find(&closingModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.NightClosingEntry, len(closingModels))
	for i, m := range closingModels {
		entries[i] = m.ToEntity()
	}
	return entries, nil
}

// CountOnDay returns the number of distinct slots recorded for a day.
func (r *nightClosingRepository) CountOnDay(ctx context.Context, day valueobject.Day) (int, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.NightClosingModel{}).
		Where("day = ?", day.String()).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(count), nil
}

// SumOnDayForCategories sums the recorded amounts for the given slots on one day.
func (r *nightClosingRepository) SumOnDayForCategories(ctx context.Context, day valueobject.Day, categories []entity.ClosingCategory) (decimal.Decimal, error) {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}

	return sumAmount(r.db.WithContext(ctx).
		Model(&model.NightClosingModel{}).
		Where("day = ? AND category IN ?", day.String(), names))
}

// DeleteByID removes one slot entry. Deleting an absent id is a no-op.
func (r *nightClosingRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.NightClosingModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteAllOnDay removes every slot entry for a day.
func (r *nightClosingRepository) DeleteAllOnDay(ctx context.Context, day valueobject.Day) error {
	result := r.db.WithContext(ctx).
		Where("day = ?", day.String()).
		Delete(&model.NightClosingModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}
