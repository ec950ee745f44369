package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shop-khata/backend/internal/domain/valueobject"
)

// ClosingCategory is one of the fixed balance slots recorded during the
// end-of-day ("night closing") count.
type ClosingCategory string

const (
	ClosingBkashAgent ClosingCategory = "bkash_agent"
	ClosingNagadAgent ClosingCategory = "nagad_agent"
	ClosingBkashP1    ClosingCategory = "bkash_p1"
	ClosingBkashP2    ClosingCategory = "bkash_p2"
	ClosingNagadP1    ClosingCategory = "nagad_p1"
	ClosingNagadP2    ClosingCategory = "nagad_p2"
	ClosingRocket     ClosingCategory = "rocket"
	ClosingGPLoad     ClosingCategory = "gp_load"
	ClosingRobiLoad   ClosingCategory = "robi_load"
	ClosingMinuteCard ClosingCategory = "minute_card"
	ClosingOthers     ClosingCategory = "others"
)

// ClosingCategories returns all slots a day's closing must fill, in display
// order. A day is complete once every one of these has been recorded.
func ClosingCategories() []ClosingCategory {
	return []ClosingCategory{
		ClosingBkashAgent, ClosingNagadAgent,
		ClosingBkashP1, ClosingBkashP2,
		ClosingNagadP1, ClosingNagadP2,
		ClosingRocket,
		ClosingGPLoad, ClosingRobiLoad, ClosingMinuteCard,
		ClosingOthers,
	}
}

// WalletCategories returns the mobile-banking slots that make up the
// digital-wallet subtotal. Load and card stock slots are excluded.
func WalletCategories() []ClosingCategory {
	return []ClosingCategory{
		ClosingBkashAgent, ClosingNagadAgent,
		ClosingBkashP1, ClosingBkashP2,
		ClosingNagadP1, ClosingNagadP2,
		ClosingRocket,
	}
}

// IsValidClosingCategory reports whether c is a known closing slot.
func IsValidClosingCategory(c ClosingCategory) bool {
	for _, known := range ClosingCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// NightClosingEntry holds the latest recorded amount for one (day, category)
// slot. At most one entry exists per slot; re-recording replaces the amount.
type NightClosingEntry struct {
	ID       uuid.UUID
	Category ClosingCategory
	Amount   decimal.Decimal
	Day      valueobject.Day
}

// NewNightClosingEntry creates a new slot entry.
func NewNightClosingEntry(category ClosingCategory, amount decimal.Decimal, day valueobject.Day) *NightClosingEntry {
	return &NightClosingEntry{
		ID:       uuid.New(),
		Category: category,
		Amount:   amount,
		Day:      day,
	}
}
