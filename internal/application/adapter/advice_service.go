package adapter

import (
	"context"

	"github.com/shop-khata/backend/internal/domain/entity"
)

// AdviceService generates short business advice for the shopkeeper from the
// recent income and expense logs.
type AdviceService interface {
	// Advise produces advice text in the shop's language.
	Advise(ctx context.Context, income []*entity.IncomeEntry, expenses []*entity.Expense, language string) (string, error)

	// IsAvailable reports whether the service is configured.
	IsAvailable() bool
}
