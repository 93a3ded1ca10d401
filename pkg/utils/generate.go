package utils

import (
	"github.com/google/uuid"
)

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

// GenerateToken returns a random single-use token for the verification,
// password-reset and email-change flows.
func GenerateToken() string {
	return uuid.New().String()
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}
