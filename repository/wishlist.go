package repository

import (
	"github.com/hassandev/storefront-api/models"
	"github.com/hassandev/storefront-api/store"
)

// WishlistRepo manages the per-user wishlists under wishlist_<email> keys.
// Entries are full product snapshots without a quantity.
type WishlistRepo struct {
	store store.Store
}

func NewWishlistRepo(s store.Store) *WishlistRepo {
	return &WishlistRepo{store: s}
}

func (r *WishlistRepo) Get(email string) []models.Product {
	return readList[models.Product](r.store, wishlistKey(email))
}

// Add appends a snapshot of the product. A second add of the same id leaves
// the list untouched and reports ErrAlreadyInWishlist.
func (r *WishlistRepo) Add(email string, product models.Product) error {
	items := r.Get(email)
	for _, item := range items {
		if item.ID == product.ID {
			return ErrAlreadyInWishlist
		}
	}
	items = append(items, product)
	return writeList(r.store, wishlistKey(email), items)
}

// Remove filters the entry out by id; idempotent.
func (r *WishlistRepo) Remove(email, productID string) error {
	items := r.Get(email)
	kept := items[:0]
	for _, item := range items {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	return writeList(r.store, wishlistKey(email), kept)
}

// Find returns the stored snapshot for the product id.
func (r *WishlistRepo) Find(email, productID string) (models.Product, bool) {
	for _, item := range r.Get(email) {
		if item.ID == productID {
			return item, true
		}
	}
	return models.Product{}, false
}

func (r *WishlistRepo) Clear(email string) error {
	return writeList(r.store, wishlistKey(email), []models.Product{})
}
