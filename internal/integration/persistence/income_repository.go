// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shop-khata/backend/internal/application/adapter"
	"github.com/shop-khata/backend/internal/domain/entity"
	"github.com/shop-khata/backend/internal/domain/valueobject"
	"github.com/shop-khata/backend/internal/integration/persistence/model"
)

// incomeRepository implements the adapter.IncomeRepository interface.
type incomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new income repository instance.
func NewIncomeRepository(db *gorm.DB) adapter.IncomeRepository {
	return &incomeRepository{
		db: db,
	}
}

// Create stores a new income entry in the database.
func (r *incomeRepository) Create(ctx context.Context, entry *entity.IncomeEntry) error {
	incomeModel := model.IncomeFromEntity(entry)
	result := r.db.WithContext(ctx).Create(incomeModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ListAll retrieves all income entries, newest first.
func (r *incomeRepository) ListAll(ctx context.Context) ([]*entity.IncomeEntry, error) {
	var incomeModels []model.IncomeModel
	result := r.db.WithContext(ctx).
		Order("day DESC, created_at DESC").
		Find(&incomeModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return incomeModelsToEntities(incomeModels), nil
}

// ListOnDay retrieves the income entries dated day, newest first.
func (r *incomeRepository) ListOnDay(ctx context.Context, day valueobject.Day) ([]*entity.IncomeEntry, error) {
	var incomeModels []model.IncomeModel
	result := r.db.WithContext(ctx).
		Where("day = ?", day.String()).
		Order("created_at DESC").
		Find(&incomeModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return incomeModelsToEntities(incomeModels), nil
}

// ListRecent retrieves the most recent entries up to limit.
func (r *incomeRepository) ListRecent(ctx context.Context, limit int) ([]*entity.IncomeEntry, error) {
	var incomeModels []model.IncomeModel
	result := r.db.WithContext(ctx).
		Order("day DESC, created_at DESC").
		Limit(limit).
		Find(&incomeModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return incomeModelsToEntities(incomeModels), nil
}

// SumAll returns the all-time income total.
func (r *incomeRepository) SumAll(ctx context.Context) (decimal.Decimal, error) {
	return sumAmount(r.db.WithContext(ctx).Model(&model.IncomeModel{}))
}

// SumOnDay returns the income total for one day.
func (r *incomeRepository) SumOnDay(ctx context.Context, day valueobject.Day) (decimal.Decimal, error) {
	return sumAmount(r.db.WithContext(ctx).
		Model(&model.IncomeModel{}).
		Where("day = ?", day.String()))
}

// SumForMonth returns the income total for one calendar month.
func (r *incomeRepository) SumForMonth(ctx context.Context, month valueobject.Month) (decimal.Decimal, error) {
	return sumAmount(r.db.WithContext(ctx).
		Model(&model.IncomeModel{}).
		Where("day LIKE ?", month.Key()+"-%"))
}

// DeleteByID removes an entry. Deleting an absent id is a no-op.
func (r *incomeRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.IncomeModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func incomeModelsToEntities(incomeModels []model.IncomeModel) []*entity.IncomeEntry {
	entries := make([]*entity.IncomeEntry, len(incomeModels))
	for i, m := range incomeModels {
		entries[i] = m.ToEntity()
	}
	return entries
}

// sumAmount runs COALESCE(SUM(amount), 0) on the prepared query. The result
// scans through a string to keep decimal precision intact.
func sumAmount(query *gorm.DB) (decimal.Decimal, error) {
	var raw string
	err := query.Select("COALESCE(SUM(amount), 0)").Row().Scan(&raw)
	if err != nil {
		return decimal.Zero, err
	}
	total, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
