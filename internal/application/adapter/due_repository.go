package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shop-khata/backend/internal/domain/entity"
	"github.com/shop-khata/backend/internal/domain/valueobject"
)

// DueUpdate carries the whitelisted mutable fields of an unpaid due. Nil
// fields are left untouched.
type DueUpdate struct {
	CustomerName *string
	Phone        *string
	Amount       *decimal.Decimal
	Note         *string
	PhotoRef     *string
}

// DueRepository defines persistence operations for customer dues.
type DueRepository interface {
	// Create stores a new unpaid due.
	Create(ctx context.Context, due *entity.CustomerDue) error

	// FindByID retrieves a due by id, or ErrDueNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CustomerDue, error)

	// ListByPaid retrieves dues filtered by paid state, newest first.
	ListByPaid(ctx context.Context, paid bool) ([]*entity.CustomerDue, error)

	// ListOnDay retrieves dues created on one day.
	ListOnDay(ctx context.Context, day valueobject.Day) ([]*entity.CustomerDue, error)

	// Search retrieves dues whose customer name or phone contains term,
	// case-insensitively.
	Search(ctx context.Context, term string) ([]*entity.CustomerDue, error)

	// SumUnpaid returns the total of all outstanding (unpaid) dues.
	SumUnpaid(ctx context.Context) (decimal.Decimal, error)

	// UpdateFields merges the given fields into a due, or ErrDueNotFound.
	UpdateFields(ctx context.Context, id uuid.UUID, update DueUpdate) (*entity.CustomerDue, error)

	// Collect atomically marks the due paid on paidDay and stores the
	// matching due_collection income entry. Either both changes commit or
	// neither does. Returns ErrDueNotFound or ErrDueAlreadyCollected.
	Collect(ctx context.Context, id uuid.UUID, paidDay valueobject.Day, income *entity.IncomeEntry) (*entity.CustomerDue, error)

	// Delete hard-removes a due. Deleting an absent id is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error
}
