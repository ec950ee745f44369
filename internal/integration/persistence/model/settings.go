package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shop-khata/backend/internal/domain/entity"
)

// settingsRowID is the fixed primary key of the singleton settings row.
const settingsRowID = 1

// SettingsModel represents the single-row settings table.
type SettingsModel struct {
	ID            int             `gorm:"primaryKey"`
	PINHash       string          `gorm:"type:varchar(255);not null"`
	OpeningCash   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DriveClientID string          `gorm:"type:varchar(255)"`
	AutoSync      bool            `gorm:"not null;default:true"`
	Language      string          `gorm:"type:varchar(8);not null"`

	ProfileName      string `gorm:"type:varchar(255)"`
	ProfileEmail     string `gorm:"type:varchar(255)"`
	ProfileAvatarURL string `gorm:"type:text"`

	RecoveryCodeHash    string     `gorm:"type:varchar(255)"`
	RecoveryCodeExpires *time.Time `gorm:"type:timestamp"`

	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the SettingsModel.
func (SettingsModel) TableName() string {
	return "settings"
}

// ToEntity converts a SettingsModel to a domain Settings entity.
func (m *SettingsModel) ToEntity() *entity.Settings {
	settings := &entity.Settings{
		PINHash:          m.PINHash,
		OpeningCash:      m.OpeningCash,
		DriveClientID:    m.DriveClientID,
		AutoSync:         m.AutoSync,
		Language:         m.Language,
		RecoveryCodeHash: m.RecoveryCodeHash,
	}
	if m.RecoveryCodeExpires != nil {
		settings.RecoveryCodeExpires = *m.RecoveryCodeExpires
	}
	if m.ProfileName != "" || m.ProfileEmail != "" || m.ProfileAvatarURL != "" {
		settings.Profile = &entity.UserProfile{
			Name:      m.ProfileName,
			Email:     m.ProfileEmail,
			AvatarURL: m.ProfileAvatarURL,
		}
	}
	return settings
}

// SettingsFromEntity creates a SettingsModel from a domain Settings entity.
func SettingsFromEntity(settings *entity.Settings) *SettingsModel {
	m := &SettingsModel{
		ID:               settingsRowID,
		PINHash:          settings.PINHash,
		OpeningCash:      settings.OpeningCash,
		DriveClientID:    settings.DriveClientID,
		AutoSync:         settings.AutoSync,
		Language:         settings.Language,
		RecoveryCodeHash: settings.RecoveryCodeHash,
	}
	if !settings.RecoveryCodeExpires.IsZero() {
		t := settings.RecoveryCodeExpires
		m.RecoveryCodeExpires = &t
	}
	if settings.Profile != nil {
		m.ProfileName = settings.Profile.Name
		m.ProfileEmail = settings.Profile.Email
		m.ProfileAvatarURL = settings.Profile.AvatarURL
	}
	return m
}
