package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/shop-khata/backend/internal/application/adapter"
	"github.com/shop-khata/backend/internal/domain/entity"
	"github.com/shop-khata/backend/internal/integration/persistence/model"
)

// stateRepository implements the adapter.StateRepository interface.
type stateRepository struct {
	db *gorm.DB
}

// NewStateRepository creates a new state repository instance.
func NewStateRepository(db *gorm.DB) adapter.StateRepository {
	return &stateRepository{
		db: db,
	}
}

// Export reads every collection plus settings and uploaded-day markers into
// one snapshot.
func (r *stateRepository) Export(ctx context.Context) (*entity.ShopState, error) {
	state := &entity.ShopState{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var incomeModels []model.IncomeModel
		if err := tx.Order("day ASC, created_at ASC").Find(&incomeModels).Error; err != nil {
			return err
		}
		for i := range incomeModels {
			state.Income = append(state.Income, incomeModels[i].ToEntity())
		}

		var expenseModels []model.ExpenseModel
		if err := tx.Order("day ASC, created_at ASC").Find(&expenseModels).Error; err != nil {
			return err
		}
		for i := range expenseModels {
			state.Expenses = append(state.Expenses, expenseModels[i].ToEntity())
		}

		var closingModels []model.NightClosingModel
		if err := tx.Order("day ASC, category ASC").Find(&closingModels).Error; err != nil {
			return err
		}
		for i := range closingModels {
			state.NightClosing = append(state.NightClosing, closingModels[i].ToEntity())
		}

		var cashModels []model.CashAdjustmentModel
		if err := tx.Order("day ASC, created_at ASC").Find(&cashModels).Error; err != nil {
			return err
		}
		for i := range cashModels {
			state.CashAdjustments = append(state.CashAdjustments, cashModels[i].ToEntity())
		}

		var dueModels []model.DueModel
		if err := tx.Order("day ASC, created_at ASC").Find(&dueModels).Error; err != nil {
			return err
		}
		for i := range dueModels {
			state.Dues = append(state.Dues, dueModels[i].ToEntity())
		}

		var dayModels []model.UploadedDayModel
		if err := tx.Order("day ASC").Find(&dayModels).Error; err != nil {
			return err
		}
		for i := range dayModels {
			state.UploadedDays = append(state.UploadedDays, dayModels[i].ToDay())
		}

		var settingsModel model.SettingsModel
		result := tx.First(&settingsModel)
		if result.Error == nil {
			state.Settings = settingsModel.ToEntity()
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return state, nil
}

// ReplaceCollections wholesale-replaces the entry collections and the
// uploaded-day set in one transaction. The settings identity fields (PIN
// hash, recovery state) are preserved from the existing row; only the
// portable settings fields are applied.
func (r *stateRepository) ReplaceCollections(ctx context.Context, state *entity.ShopState) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range []interface{}{
			&model.IncomeModel{},
			&model.ExpenseModel{},
			&model.NightClosingModel{},
			&model.CashAdjustmentModel{},
			&model.DueModel{},
			&model.UploadedDayModel{},
		} {
			if err := tx.Where("1 = 1").Delete(table).Error; err != nil {
				return err
			}
		}

		for _, e := range state.Income {
			if err := tx.Create(model.IncomeFromEntity(e)).Error; err != nil {
				return err
			}
		}
		for _, e := range state.Expenses {
			if err := tx.Create(model.ExpenseFromEntity(e)).Error; err != nil {
				return err
			}
		}
		for _, e := range state.NightClosing {
			if err := tx.Create(model.NightClosingFromEntity(e)).Error; err != nil {
				return err
			}
		}
		for _, e := range state.CashAdjustments {
			if err := tx.Create(model.CashAdjustmentFromEntity(e)).Error; err != nil {
				return err
			}
		}
		for _, d := range state.Dues {
			if err := tx.Create(model.DueFromEntity(d)).Error; err != nil {
				return err
			}
		}
		for _, d := range state.UploadedDays {
			if err := tx.Create(model.UploadedDayFromDay(d)).Error; err != nil {
				return err
			}
		}

		if state.Settings == nil {
			return nil
		}

		var settingsModel model.SettingsModel
		result := tx.First(&settingsModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				// no local row to merge into; credentials stay unset
				return nil
			}
			return result.Error
		}

		settingsModel.OpeningCash = state.Settings.OpeningCash
		settingsModel.AutoSync = state.Settings.AutoSync
		settingsModel.Language = state.Settings.Language
		return tx.Save(&settingsModel).Error
	})
}
