// Package advice contains the AI business advice use case.
package advice

import (
	"context"
	"errors"
	"fmt"

	"github.com/shop-khata/backend/internal/application/adapter"
	"github.com/shop-khata/backend/internal/domain/entity"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
)

// recentEntryLimit caps how much history goes into the advice prompt.
const recentEntryLimit = 50

// GetAdviceOutput represents the output of the advice request.
type GetAdviceOutput struct {
	Advice string
}

// GetAdviceUseCase feeds recent income and expenses to the advice model and
// returns its summary in the shop's configured language.
type GetAdviceUseCase struct {
	incomeRepo    adapter.IncomeRepository
	expenseRepo   adapter.ExpenseRepository
	settingsRepo  adapter.SettingsRepository
	adviceService adapter.AdviceService
}

// NewGetAdviceUseCase creates a new GetAdviceUseCase instance.
func NewGetAdviceUseCase(
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
	settingsRepo adapter.SettingsRepository,
	adviceService adapter.AdviceService,
) *GetAdviceUseCase {
	return &GetAdviceUseCase{
		incomeRepo:    incomeRepo,
		expenseRepo:   expenseRepo,
		settingsRepo:  settingsRepo,
		adviceService: adviceService,
	}
}

// Execute requests advice based on recent activity.
func (uc *GetAdviceUseCase) Execute(ctx context.Context) (*GetAdviceOutput, error) {
	if !uc.adviceService.IsAvailable() {
		return nil, domainerror.ErrAdviceUnavailable
	}

	language := entity.DefaultLanguage
	settings, err := uc.settingsRepo.Get(ctx)
	if err == nil {
		language = settings.Language
	} else if !errors.Is(err, domainerror.ErrSettingsNotFound) {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	income, err := uc.incomeRepo.ListRecent(ctx, recentEntryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent income: %w", err)
	}
	expenses, err := uc.expenseRepo.ListRecent(ctx, recentEntryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent expenses: %w", err)
	}

	text, err := uc.adviceService.Advise(ctx, income, expenses, language)
	if err != nil {
		return nil, fmt.Errorf("failed to generate advice: %w", err)
	}

	return &GetAdviceOutput{Advice: text}, nil
}
