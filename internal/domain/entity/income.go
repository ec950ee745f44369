// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shop-khata/backend/internal/domain/valueobject"
)

// IncomeCategory classifies a daily income ("live") entry.
type IncomeCategory string

const (
	IncomePhotocopy     IncomeCategory = "photocopy"
	IncomeColorPrint    IncomeCategory = "color_print"
	IncomePhotoPrint    IncomeCategory = "photo_print"
	IncomeOnlineApply   IncomeCategory = "online_apply"
	IncomeOthers        IncomeCategory = "others"
	IncomeDueCollection IncomeCategory = "due_collection"
)

// IsValidIncomeCategory reports whether c is a known income category.
func IsValidIncomeCategory(c IncomeCategory) bool {
	switch c {
	case IncomePhotocopy, IncomeColorPrint, IncomePhotoPrint,
		IncomeOnlineApply, IncomeOthers, IncomeDueCollection:
		return true
	}
	return false
}

// IncomeEntry is one recorded income. Entries are immutable after creation
// except for deletion.
type IncomeEntry struct {
	ID        uuid.UUID
	Category  IncomeCategory
	Amount    decimal.Decimal
	Day       valueobject.Day
	CreatedAt time.Time
}

// NewIncomeEntry creates a new IncomeEntry dated day.
func NewIncomeEntry(category IncomeCategory, amount decimal.Decimal, day valueobject.Day) *IncomeEntry {
	return &IncomeEntry{
		ID:        uuid.New(),
		Category:  category,
		Amount:    amount,
		Day:       day,
		CreatedAt: time.Now().UTC(),
	}
}
