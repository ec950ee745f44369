package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shop-khata/backend/internal/application/adapter"
	"github.com/shop-khata/backend/internal/domain/entity"
	"github.com/shop-khata/backend/internal/integration/persistence/model"
)

// cashAdjustmentRepository implements the adapter.CashAdjustmentRepository interface.
type cashAdjustmentRepository struct {
	db *gorm.DB
}

// NewCashAdjustmentRepository creates a new cash adjustment repository instance.
func NewCashAdjustmentRepository(db *gorm.DB) adapter.CashAdjustmentRepository {
	return &cashAdjustmentRepository{
		db: db,
	}
}

// Create stores a new adjustment in the database.
func (r *cashAdjustmentRepository) Create(ctx context.Context, adjustment *entity.CashAdjustment) error {
	adjustmentModel := model.CashAdjustmentFromEntity(adjustment)
	result := r.db.WithContext(ctx).Create(adjustmentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ListAll retrieves all adjustments, newest first.
func (r *cashAdjustmentRepository) ListAll(ctx context.Context) ([]*entity.CashAdjustment, error) {
	var adjustmentModels []model.CashAdjustmentModel
	result := r.db.WithContext(ctx).
		Order("day DESC, created_at DESC").
		Find(&adjustmentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	adjustments := make([]*entity.CashAdjustment, len(adjustmentModels))
	for i, m := range adjustmentModels {
		adjustments[i] = m.ToEntity()
	}
	return adjustments, nil
}

// SumByDirection returns the all-time total moved in the given direction.
func (r *cashAdjustmentRepository) SumByDirection(ctx context.Context, direction entity.CashDirection) (decimal.Decimal, error) {
	return sumAmount(r.db.WithContext(ctx).
		Model(&model.CashAdjustmentModel{}).
		Where("direction = ?", string(direction)))
}

// DeleteByID removes an adjustment. Deleting an absent id is a no-op.
func (r *cashAdjustmentRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CashAdjustmentModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}
