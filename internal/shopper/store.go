// Package shopper keeps the state a shopper's browser used to hold in local
// storage: recently viewed patterns, the cart and the last catalog view.
package shopper

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("shopper state not found")

// Store persists opaque blobs by key. Get returns ErrNotFound for missing keys.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Update replaces the value of key with fn(current). current is nil when
	// the key is missing. Concurrent Updates of one key never lose a write.
	Update(ctx context.Context, key string, ttl time.Duration, fn func(current []byte) ([]byte, error)) error
}

func recentKey(sessionID string) string { return "shopper:" + sessionID + ":recent" }
func cartKey(sessionID string) string   { return "shopper:" + sessionID + ":cart" }
func viewKey(sessionID string) string   { return "shopper:" + sessionID + ":view" }
