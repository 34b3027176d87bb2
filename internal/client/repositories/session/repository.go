// Package session provides durable storage for the session record:
// the token, username, and balance strings that survive client restarts.
package session

import "context"

// Well-known session keys. They are written together on login and
// cleared together on logout; no partial-field mutation happens outside
// those two operations.
const (
	KeyToken    = "token"
	KeyUsername = "username"
	KeyBalance  = "balance"
)

// Repository is a small key-value store for session fields.
type Repository interface {
	// Get returns the value for key, or "" when the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set upserts the value for key.
	Set(ctx context.Context, key, value string) error

	// Clear removes every stored session field.
	Clear(ctx context.Context) error
}
