package token

import (
	"fmt"

	"github.com/dtroode/files-manager/internal/model"
	"github.com/google/uuid"
)

// Random issues opaque session tokens backed by crypto/rand.
type Random struct{}

var _ model.TokenGenerator = (*Random)(nil)

// NewRandom creates a new random token generator.
func NewRandom() *Random {
	return &Random{}
}

// Generate returns a fresh version 4 UUID string.
func (r *Random) Generate() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return id.String(), nil
}
