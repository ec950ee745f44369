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

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create stores a new expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Create(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ListAll retrieves all expenses, newest first.
func (r *expenseRepository) ListAll(ctx context.Context) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Order("day DESC, created_at DESC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return expenseModelsToEntities(expenseModels), nil
}

// ListOnDay retrieves the expenses dated day, newest first.
func (r *expenseRepository) ListOnDay(ctx context.Context, day valueobject.Day) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("day = ?", day.String()).
		Order("created_at DESC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return expenseModelsToEntities(expenseModels), nil
}

// ListRecent retrieves the most recent expenses up to limit.
func (r *expenseRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Order("day DESC, created_at DESC").
		Limit(limit).
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return expenseModelsToEntities(expenseModels), nil
}

// SumAll returns the all-time expense total.
func (r *expenseRepository) SumAll(ctx context.Context) (decimal.Decimal, error) {
	return sumAmount(r.db.WithContext(ctx).Model(&model.ExpenseModel{}))
}

// SumOnDay returns the expense total for one day.
func (r *expenseRepository) SumOnDay(ctx context.Context, day valueobject.Day) (decimal.Decimal, error) {
	return sumAmount(r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("day = ?", day.String()))
}

// SumForMonth returns the expense total for one calendar month.
func (r *expenseRepository) SumForMonth(ctx context.Context, month valueobject.Month) (decimal.Decimal, error) {
	return sumAmount(r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("day LIKE ?", month.Key()+"-%"))
}

// DeleteByID removes an expense. Deleting an absent id is a no-op.
func (r *expenseRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ExpenseModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func expenseModelsToEntities(expenseModels []model.ExpenseModel) []*entity.Expense {
	expenses := make([]*entity.Expense, len(expenseModels))
	for i, m := range expenseModels {
		expenses[i] = m.ToEntity()
	}
	return expenses
}
