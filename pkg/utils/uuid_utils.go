package utils

import (
	"github.com/google/uuid"
)

// Hook for the clock-dependent generator.
var newUUIDv7 = uuid.NewV7

// GenerateUUIDv7 returns a time-ordered UUID so rows sort by creation.
// On the rare clock error it falls back to a random v4.
func GenerateUUIDv7() uuid.UUID {
	id, err := newUUIDv7()
	if err != nil {
		return uuid.New()
	}
	return id
}
