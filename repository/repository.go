// Package repository holds the per-entity data access layer. Repositories own
// the key namespace and the JSON codec; nothing above this package touches the
// raw store. A blob that fails to decode is treated as absent, so a corrupt
// record degrades to an empty list or a logged-out session rather than an
// error surfaced to every caller.
package repository

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/hassandev/storefront-api/store"
)

// Storage keys. Per-user lists are namespaced by the owner's email.
const (
	keySession  = "currentUser"
	keyUsers    = "user"
	keyProducts = "products"
	keyOrders   = "orders"
	keyMessages = "contactMessages"
)

func cartKey(email string) string     { return "cart_" + email }
func wishlistKey(email string) string { return "wishlist_" + email }

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailTaken        = errors.New("an account with this email already exists")
	ErrProductNotFound   = errors.New("product not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrItemNotFound      = errors.New("item not found")
	ErrAlreadyInWishlist = errors.New("product is already in the wishlist")
)

// readList loads and decodes a JSON array. Absent and unparseable blobs both
// come back as the empty list.
func readList[T any](s store.Store, key string) []T {
	raw, err := s.Get(key)
	if err != nil {
		return nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}

// writeList encodes and overwrites the whole list. Last write wins.
func writeList[T any](s store.Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.Put(key, raw)
}

// newID mirrors the Date.now() convention: the current unix time in
// milliseconds as a decimal string.
func newID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}
