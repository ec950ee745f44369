package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shop-khata/backend/internal/domain/valueobject"
)

// CustomerDue is an outstanding customer credit. It is created unpaid,
// transitions to paid at most once, and may be permanently removed only
// after collection.
type CustomerDue struct {
	ID           uuid.UUID
	CustomerName string
	Phone        string
	Amount       decimal.Decimal
	Note         string
	Day          valueobject.Day
	CreatedAt    time.Time
	PhotoRef     string
	IsPaid       bool
	PaidDay      *valueobject.Day
}

// NewCustomerDue creates an unpaid due dated day.
func NewCustomerDue(customerName, phone string, amount decimal.Decimal, note, photoRef string, day valueobject.Day) *CustomerDue {
	return &CustomerDue{
		ID:           uuid.New(),
		CustomerName: customerName,
		Phone:        phone,
		Amount:       amount,
		Note:         note,
		Day:          day,
		CreatedAt:    time.Now().UTC(),
		PhotoRef:     photoRef,
		IsPaid:       false,
	}
}
