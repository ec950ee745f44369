package model

import (
	"time"

	"github.com/shop-khata/backend/internal/domain/valueobject"
)

// UploadedDayModel represents the uploaded_days table, one row per day whose
// report has been archived.
type UploadedDayModel struct {
	Day       string    `gorm:"type:varchar(10);primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the UploadedDayModel.
func (UploadedDayModel) TableName() string {
	return "uploaded_days"
}

// ToDay converts an UploadedDayModel to a Day value.
func (m *UploadedDayModel) ToDay() valueobject.Day {
	return valueobject.Day(m.Day)
}

// UploadedDayFromDay creates an UploadedDayModel for a day.
func UploadedDayFromDay(day valueobject.Day) *UploadedDayModel {
	return &UploadedDayModel{Day: day.String()}
}
