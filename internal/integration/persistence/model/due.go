package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shop-khata/backend/internal/domain/entity"
	"github.com/shop-khata/backend/internal/domain/valueobject"
)

// DueModel represents the customer_dues table in the database.
type DueModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerName string          `gorm:"type:varchar(255);not null;index"`
	Phone        string          `gorm:"type:varchar(32);index"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Note         string          `gorm:"type:text"`
	PhotoRef     string          `gorm:"type:text"`
	Day          string          `gorm:"type:varchar(10);not null;index"`
	CreatedAt    time.Time       `gorm:"not null"`
	IsPaid       bool            `gorm:"not null;default:false;index"`
	PaidDay      *string         `gorm:"type:varchar(10)"`
}

// TableName returns the table name for the DueModel.
func (DueModel) TableName() string {
	return "customer_dues"
}

// ToEntity converts a DueModel to a domain CustomerDue entity.
func (m *DueModel) ToEntity() *entity.CustomerDue {
	var paidDay *valueobject.Day
	if m.PaidDay != nil {
		d := valueobject.Day(*m.PaidDay)
		paidDay = &d
	}

	return &entity.CustomerDue{
		ID:           m.ID,
		CustomerName: m.CustomerName,
		Phone:        m.Phone,
		Amount:       m.Amount,
		Note:         m.Note,
		Day:          valueobject.Day(m.Day),
		CreatedAt:    m.CreatedAt,
		PhotoRef:     m.PhotoRef,
		IsPaid:       m.IsPaid,
		PaidDay:      paidDay,
	}
}

// DueFromEntity creates a DueModel from a domain CustomerDue entity.
func DueFromEntity(due *entity.CustomerDue) *DueModel {
	var paidDay *string
	if due.PaidDay != nil {
		s := due.PaidDay.String()
		paidDay = &s
	}

	return &DueModel{
		ID:           due.ID,
		CustomerName: due.CustomerName,
		Phone:        due.Phone,
		Amount:       due.Amount,
		Note:         due.Note,
		PhotoRef:     due.PhotoRef,
		Day:          due.Day.String(),
		CreatedAt:    due.CreatedAt,
		IsPaid:       due.IsPaid,
		PaidDay:      paidDay,
	}
}
