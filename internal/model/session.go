package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionTTL is the fixed lifetime of a session, counted from creation.
const SessionTTL = 24 * time.Hour

// SessionKeyPrefix namespaces session tokens inside the key-value store.
const SessionKeyPrefix = "auth_"

// SessionStore maps opaque tokens to user ids with a TTL. Expiry is enforced
// by the store itself; reads never extend it.
type SessionStore interface {
	Set(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error
	Get(ctx context.Context, token string) (uuid.UUID, error)
	// Delete removes the token and reports ErrNotFound if it was absent.
	Delete(ctx context.Context, token string) error
	Ping(ctx context.Context) error
	Close() error
}

// Session is an issued bearer credential.
type Session struct {
	Token     string
	UserID    uuid.UUID
	CreatedAt time.Time
	ExpiresAt time.Time
}

// SessionKey returns the store key for a token.
func SessionKey(token string) string {
	return SessionKeyPrefix + token
}
