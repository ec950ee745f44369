package adapter

// PINService hashes and verifies the shop PIN.
type PINService interface {
	// HashPIN hashes a plain PIN for storage.
	HashPIN(pin string) (string, error)

	// VerifyPIN compares a plain PIN against a stored hash. Returns an error
	// on mismatch.
	VerifyPIN(hashedPIN, pin string) error

	// ValidatePINStrength checks a candidate PIN against minimum requirements.
	ValidatePINStrength(pin string) error
}
