// Package tokenstore persists the opaque session token across client
// restarts. The storage backend is swappable: an in-memory store for
// tests, a plain file, a local bbolt keystore, or a shared Redis
// instance.
package tokenstore

import "context"

// TokenKey is the fixed key the session token is stored under,
// regardless of backend.
const TokenKey = "toDoListToken"

// Store is the key-value persistence contract behind the session
// credential holder. An absent token loads as the empty string, not as
// an error.
type Store interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
	Close() error
}
