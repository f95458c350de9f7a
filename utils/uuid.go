package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string. Bid identifiers are
// minted at acceptance time, never taken from the caller.
func GenerateID() string {
	return uuid.NewString()
}
