// Package store provides the flat key-value substrate the whole storefront
// persists into: string keys mapped to JSON blobs, written whole. There is no
// merge and no versioning; concurrent writers race last-write-wins, the same
// way multiple browser tabs sharing one origin would.
package store

import "errors"

// ErrKeyNotFound is returned by Get for keys that were never written or were
// deleted.
var ErrKeyNotFound = errors.New("store: key not found")

// Store is a synchronous blob store. Put overwrites the previous value for
// the key unconditionally.
type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)
	Close() error
}
