package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shop-wide defaults applied when the store starts empty.
const (
	DefaultPIN      = "1234"
	DefaultLanguage = "bn"
)

// UserProfile is display-only identity data supplied by the external auth
// collaborator. The core never verifies it.
type UserProfile struct {
	Name      string
	Email     string
	AvatarURL string
}

// Settings is the singleton shop configuration.
type Settings struct {
	PINHash       string
	OpeningCash   decimal.Decimal
	DriveClientID string
	AutoSync      bool
	Language      string
	Profile       *UserProfile

	// One-time PIN recovery code state. Zero values mean no recovery is
	// pending.
	RecoveryCodeHash    string
	RecoveryCodeExpires time.Time
}

// DefaultSettings returns the settings a fresh store starts with. The PIN
// hash must be filled in by the caller from DefaultPIN.
func DefaultSettings() *Settings {
	return &Settings{
		OpeningCash: decimal.Zero,
		AutoSync:    true,
		Language:    DefaultLanguage,
	}
}
