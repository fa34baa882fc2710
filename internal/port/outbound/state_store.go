// Package outbound defines the ports the domain needs from the outside
// world: durable client-side storage and the navigation capability.
package outbound

import "errors"

// ErrKeyNotFound is returned by Get when nothing is stored under a key.
// An absent key is not a failure; it means "nothing cached yet".
var ErrKeyNotFound = errors.New("state key not found")

// StateStore is the durable client-side storage the entity stores persist
// to and rehydrate from: string keys mapping to JSON-serialized blobs.
// Writes are synchronous and last-writer-wins; concurrent processes are
// not coordinated beyond that.
//
// Implementations: file-backed (one file per key), SQLite-backed, and an
// in-memory store for tests and ephemeral sessions.
type StateStore interface {
	// Get returns the blob stored under key, or ErrKeyNotFound.
	Get(key string) ([]byte, error)

	// Put stores the blob under key, replacing any previous value.
	Put(key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
}
