package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shop-khata/backend/internal/domain/entity"
	"github.com/shop-khata/backend/internal/domain/valueobject"
)

// NightClosingRepository defines persistence operations for night-closing
// entries. It owns the one-entry-per-(day, category) invariant.
type NightClosingRepository interface {
	// Upsert records an amount for a (day, category) slot. When the slot
	// already holds an entry its amount is replaced in place; otherwise a new
	// entry is created. The stored entry is returned either way.
	Upsert(ctx context.Context, entry *entity.NightClosingEntry) (*entity.NightClosingEntry, error)

	// ListOnDay retrieves all slot entries for a day.
	ListOnDay(ctx context.Context, day valueobject.Day) ([]*entity.NightClosingEntry, error)

	// CountOnDay returns the number of distinct slots recorded for a day.
	CountOnDay(ctx context.Context, day valueobject.Day) (int, error)

	// SumOnDayForCategories sums the recorded amounts for the given slots on
	// one day. Unrecorded slots contribute nothing.
	SumOnDayForCategories(ctx context.Context, day valueobject.Day, categories []entity.ClosingCategory) (decimal.Decimal, error)

	// DeleteByID removes one slot entry. Deleting an absent id is a no-op.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// DeleteAllOnDay removes every slot entry for a day, returning the day to
	// an empty closing. Safe to call on an already-empty day.
	DeleteAllOnDay(ctx context.Context, day valueobject.Day) error
}
