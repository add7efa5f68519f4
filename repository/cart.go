package repository

import (
	"github.com/hassandev/storefront-api/models"
	"github.com/hassandev/storefront-api/store"
)

// CartRepo manages the per-user cart lists under cart_<email> keys. Every
// mutation reads the whole list, edits it in memory and writes it back whole.
type CartRepo struct {
	store store.Store
}

func NewCartRepo(s store.Store) *CartRepo {
	return &CartRepo{store: s}
}

func (r *CartRepo) Get(email string) []models.CartItem {
	return readList[models.CartItem](r.store, cartKey(email))
}

// Add merges by product id: an existing line has its quantity incremented,
// otherwise a snapshot of the product is appended. The cart never holds two
// lines for the same product.
func (r *CartRepo) Add(email string, product models.Product, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	items := r.Get(email)
	for i, item := range items {
		if item.ID == product.ID {
			items[i].Quantity += quantity
			return writeList(r.store, cartKey(email), items)
		}
	}
	items = append(items, models.NewCartItem(product, quantity))
	return writeList(r.store, cartKey(email), items)
}

// UpdateQuantity sets the line's quantity. Zero or less removes the line —
// the one floor policy applied everywhere.
func (r *CartRepo) UpdateQuantity(email, itemID string, quantity int) error {
	if quantity <= 0 {
		return r.Remove(email, itemID)
	}
	items := r.Get(email)
	for i, item := range items {
		if item.ID == itemID {
			items[i].Quantity = quantity
			return writeList(r.store, cartKey(email), items)
		}
	}
	return ErrItemNotFound
}

// Remove filters the line out by id. Removing an absent id is a no-op.
func (r *CartRepo) Remove(email, itemID string) error {
	items := r.Get(email)
	kept := items[:0]
	for _, item := range items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	return writeList(r.store, cartKey(email), kept)
}

func (r *CartRepo) Clear(email string) error {
	return writeList(r.store, cartKey(email), []models.CartItem{})
}

// Count is the sum of line quantities.
func (r *CartRepo) Count(email string) int {
	count := 0
	for _, item := range r.Get(email) {
		count += item.Quantity
	}
	return count
}

// Total is the sum of price*quantity over the list; 0 for an empty cart.
func (r *CartRepo) Total(email string) float64 {
	total := 0.0
	for _, item := range r.Get(email) {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
