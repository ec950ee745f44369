package error

import "errors"

// Settings domain errors.
var (
	// ErrSettingsNotFound is returned when the settings row has not been
	// seeded yet. Callers fall back to defaults rather than failing.
	ErrSettingsNotFound = errors.New("settings not found")

	// ErrAdviceUnavailable is returned when the AI advice service is not
	// configured or cannot be reached.
	ErrAdviceUnavailable = errors.New("advice service unavailable")
)
