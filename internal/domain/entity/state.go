package entity

import (
	"github.com/shop-khata/backend/internal/domain/valueobject"
)

// ShopState is a snapshot of every collection the store owns. It is the unit
// the cloud sync boundary exports and imports.
type ShopState struct {
	Settings        *Settings
	Income          []*IncomeEntry
	Expenses        []*Expense
	NightClosing    []*NightClosingEntry
	CashAdjustments []*CashAdjustment
	Dues            []*CustomerDue
	UploadedDays    []valueobject.Day
}
