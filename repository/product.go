package repository

import (
	"strconv"
	"time"

	"github.com/hassandev/storefront-api/models"
	"github.com/hassandev/storefront-api/store"
)

// ProductRepo manages the shared catalog under the "products" key.
type ProductRepo struct {
	store store.Store
}

func NewProductRepo(s store.Store) *ProductRepo {
	return &ProductRepo{store: s}
}

func (r *ProductRepo) List() []models.Product {
	return readList[models.Product](r.store, keyProducts)
}

func (r *ProductRepo) Find(id string) (models.Product, bool) {
	for _, p := range r.List() {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Create assigns a millisecond-timestamp id and appends the product. If a
// double submit lands in the same millisecond the id is bumped until free.
func (r *ProductRepo) Create(product models.Product) (models.Product, error) {
	products := r.List()

	taken := make(map[string]struct{}, len(products))
	for _, p := range products {
		taken[p.ID] = struct{}{}
	}
	ms := time.Now().UnixMilli()
	id := strconv.FormatInt(ms, 10)
	for {
		if _, exists := taken[id]; !exists {
			break
		}
		ms++
		id = strconv.FormatInt(ms, 10)
	}
	product.ID = id

	products = append(products, product)
	if err := writeList(r.store, keyProducts, products); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// Update overwrites the product with a matching id. Existing cart, wishlist
// and order lines keep their snapshots.
func (r *ProductRepo) Update(product models.Product) error {
	products := r.List()
	for i, p := range products {
		if p.ID == product.ID {
			products[i] = product
			return writeList(r.store, keyProducts, products)
		}
	}
	return ErrProductNotFound
}

// Upsert updates by id when present, otherwise appends keeping the given id.
// Used by the spreadsheet import.
func (r *ProductRepo) Upsert(product models.Product) (created bool, err error) {
	products := r.List()
	for i, p := range products {
		if p.ID == product.ID {
			products[i] = product
			return false, writeList(r.store, keyProducts, products)
		}
	}
	products = append(products, product)
	return true, writeList(r.store, keyProducts, products)
}

func (r *ProductRepo) Delete(id string) error {
	products := r.List()
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return writeList(r.store, keyProducts, kept)
}

// DeleteWhere removes every product the predicate matches and returns how
// many were dropped. Category deletion cascades through this.
func (r *ProductRepo) DeleteWhere(match func(models.Product) bool) (int, error) {
	products := r.List()
	kept := products[:0]
	removed := 0
	for _, p := range products {
		if match(p) {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	if removed == 0 {
		return 0, nil
	}
	return removed, writeList(r.store, keyProducts, kept)
}

// ReplaceAll overwrites the whole catalog.
func (r *ProductRepo) ReplaceAll(products []models.Product) error {
	return writeList(r.store, keyProducts, products)
}
