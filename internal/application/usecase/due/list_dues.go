package due

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shop-khata/backend/internal/application/adapter"
	"github.com/shop-khata/backend/internal/domain/entity"
)

// ListDuesInput represents the input for listing dues. A non-empty Search
// term filters by customer name or phone across both paid and unpaid dues;
// otherwise Paid selects which side of the ledger to list.
type ListDuesInput struct {
	Paid   bool
	Search string
}

// ListDuesOutput represents the output of listing dues.
type ListDuesOutput struct {
	Dues []*entity.CustomerDue

	// TotalOutstanding is the sum over all unpaid dues, independent of the
	// filter applied to the listing.
	TotalOutstanding decimal.Decimal
}

// ListDuesUseCase handles the due book listing and search.
type ListDuesUseCase struct {
	dueRepo adapter.DueRepository
}

// NewListDuesUseCase creates a new ListDuesUseCase instance.
func NewListDuesUseCase(dueRepo adapter.DueRepository) *ListDuesUseCase {
	return &ListDuesUseCase{dueRepo: dueRepo}
}

// Execute lists the dues.
func (uc *ListDuesUseCase) Execute(ctx context.Context, input ListDuesInput) (*ListDuesOutput, error) {
	var (
		dues []*entity.CustomerDue
		err  error
	)

	if term := strings.TrimSpace(input.Search); term != "" {
		dues, err = uc.dueRepo.Search(ctx, term)
	} else {
		dues, err = uc.dueRepo.ListByPaid(ctx, input.Paid)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list dues: %w", err)
	}

	outstanding, err := uc.dueRepo.SumUnpaid(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum outstanding dues: %w", err)
	}

	return &ListDuesOutput{Dues: dues, TotalOutstanding: outstanding}, nil
}
