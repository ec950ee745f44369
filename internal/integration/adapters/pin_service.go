// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/shop-khata/backend/internal/application/adapter"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
)

const (
	// bcryptCost is the cost factor for bcrypt hashing.
	bcryptCost = 12
	// minPINLength is the minimum required PIN length.
	minPINLength = 4
)

// pinService implements the adapter.PINService interface.
type pinService struct{}

// NewPINService creates a new PIN service instance.
func NewPINService() adapter.PINService {
	return &pinService{}
}

// HashPIN hashes a plain PIN using bcrypt.
func (s *pinService) HashPIN(pin string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(pin), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// VerifyPIN compares a plain PIN with a stored hash.
func (s *pinService) VerifyPIN(hashedPIN, pin string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPIN), []byte(pin))
}

// ValidatePINStrength checks that a candidate PIN is at least four digits.
func (s *pinService) ValidatePINStrength(pin string) error {
	if len(pin) < minPINLength {
		return domainerror.NewAuthError(
			domainerror.ErrCodeWeakPIN,
			"PIN must be at least 4 digits",
			domainerror.ErrWeakPIN,
		)
	}
	for _, r := range pin {
		if !unicode.IsDigit(r) {
			return domainerror.NewAuthError(
				domainerror.ErrCodeWeakPIN,
				"PIN must contain digits only",
				domainerror.ErrWeakPIN,
			)
		}
	}
	return nil
}
