package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shop-khata/backend/internal/application/adapter"
	"github.com/shop-khata/backend/internal/domain/entity"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
	"github.com/shop-khata/backend/internal/domain/valueobject"
	"github.com/shop-khata/backend/internal/integration/persistence/model"
)

// dueRepository implements the adapter.DueRepository interface.
type dueRepository struct {
	db *gorm.DB
}

// NewDueRepository creates a new due repository instance.
func NewDueRepository(db *gorm.DB) adapter.DueRepository {
	return &dueRepository{
		db: db,
	}
}

// Create stores a new unpaid due in the database.
func (r *dueRepository) Create(ctx context.Context, due *entity.CustomerDue) error {
	dueModel := model.DueFromEntity(due)
	result := r.db.WithContext(ctx).Create(dueModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a due by its ID.
func (r *dueRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CustomerDue, error) {
	var dueModel model.DueModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&dueModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrDueNotFound
		}
		return nil, result.Error
	}
	return dueModel.ToEntity(), nil
}

// ListByPaid retrieves dues filtered by paid state, newest first.
func (r *dueRepository) ListByPaid(ctx context.Context, paid bool) ([]*entity.CustomerDue, error) {
	var dueModels []model.DueModel
	result := r.db.WithContext(ctx).
		Where("is_paid = ?", paid).
		Order("day DESC, created_at DESC").
		Find(&dueModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return dueModelsToEntities(dueModels), nil
}

// ListOnDay retrieves dues created on one day.
func (r *dueRepository) ListOnDay(ctx context.Context, day valueobject.Day) ([]*entity.CustomerDue, error) {
	var dueModels []model.DueModel
	result := r.db.WithContext(ctx).
		Where("day = ?", day.String()).
		Order("created_at DESC").
		Find(&dueModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return dueModelsToEntities(dueModels), nil
}

// Search retrieves dues whose customer name or phone contains term.
func (r *dueRepository) Search(ctx context.Context, term string) ([]*entity.CustomerDue, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	var dueModels []model.DueModel
	result := r.db.WithContext(ctx).
		Where("LOWER(customer_name) LIKE ? OR phone LIKE ?", pattern, pattern).
		Order("day DESC, created_at DESC").
		Find(&dueModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return dueModelsToEntities(dueModels), nil
}

// SumUnpaid returns the total of all outstanding dues.
func (r *dueRepository) SumUnpaid(ctx context.Context) (decimal.Decimal, error) {
	return sumAmount(r.db.WithContext(ctx).
		Model(&model.DueModel{}).
		Where("is_paid = ?", false))
}

// UpdateFields merges the given fields into a due.
func (r *dueRepository) UpdateFields(ctx context.Context, id uuid.UUID, update adapter.DueUpdate) (*entity.CustomerDue, error) {
	var updated model.DueModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dueModel model.DueModel
		result := tx.Where("id = ?", id).First(&dueModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return domainerror.ErrDueNotFound
			}
			return result.Error
		}

		if update.CustomerName != nil {
			dueModel.CustomerName = *update.CustomerName
		}
		if update.Phone != nil {
			dueModel.Phone = *update.Phone
		}
		if update.Amount != nil {
			dueModel.Amount = *update.Amount
		}
		if update.Note != nil {
			dueModel.Note = *update.Note
		}
		if update.PhotoRef != nil {
			dueModel.PhotoRef = *update.PhotoRef
		}

		if err := tx.Save(&dueModel).Error; err != nil {
			return err
		}
		updated = dueModel
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated.ToEntity(), nil
}

// Collect atomically marks the due paid and stores the matching income
// entry. Either both writes commit or neither does.
func (r *dueRepository) Collect(ctx context.Context, id uuid.UUID, paidDay valueobject.Day, income *entity.IncomeEntry) (*entity.CustomerDue, error) {
	var collected model.DueModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dueModel model.DueModel
		result := tx.Where("id = ?", id).First(&dueModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return domainerror.ErrDueNotFound
			}
			return result.Error
		}

		if dueModel.IsPaid {
			return domainerror.ErrDueAlreadyCollected
		}

		paid := paidDay.String()
		dueModel.IsPaid = true
		dueModel.PaidDay = &paid
		if err := tx.Save(&dueModel).Error; err != nil {
			return err
		}

		if err := tx.Create(model.IncomeFromEntity(income)).Error; err != nil {
			return err
		}

		collected = dueModel
		return nil
	})
	if err != nil {
		return nil, err
	}

	return collected.ToEntity(), nil
}

// Delete hard-removes a due. Deleting an absent id is a no-op.
func (r *dueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.DueModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func dueModelsToEntities(dueModels []model.DueModel) []*entity.CustomerDue {
	dues := make([]*entity.CustomerDue, len(dueModels))
	for i, m := range dueModels {
		dues[i] = m.ToEntity()
	}
	return dues
}
