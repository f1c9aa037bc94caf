// Package session stores live login sessions so tokens can be revoked
// before they expire. Keys are token fingerprints, never raw session ids.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned for unknown, revoked or expired sessions.
var ErrNotFound = errors.New("session: not found")

// Record is what a backend keeps for each session.
type Record struct {
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Store interface {
	// Save stores rec under key until rec.ExpiresAt.
	Save(ctx context.Context, key string, rec Record) error

	// Lookup returns the record for key or ErrNotFound.
	Lookup(ctx context.Context, key string) (Record, error)

	// Revoke deletes key. Revoking an unknown key is not an error.
	Revoke(ctx context.Context, key string) error

	Ping(ctx context.Context) error
	Close() error
}
