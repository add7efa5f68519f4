package repository

import (
	"strconv"
	"time"

	"github.com/hassandev/storefront-api/models"
	"github.com/hassandev/storefront-api/store"
)

// OrderRepo manages the global append-only order list. Orders are shared
// storage filtered by buyer email at read time; users never delete them.
type OrderRepo struct {
	store store.Store
}

func NewOrderRepo(s store.Store) *OrderRepo {
	return &OrderRepo{store: s}
}

// NewOrderID builds an ORD-<unix ms> identifier.
func NewOrderID() string {
	return "ORD-" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

func (r *OrderRepo) List() []models.Order {
	return readList[models.Order](r.store, keyOrders)
}

func (r *OrderRepo) ListByUser(email string) []models.Order {
	var out []models.Order
	for _, o := range r.List() {
		if o.User == email {
			out = append(out, o)
		}
	}
	return out
}

func (r *OrderRepo) Find(id string) (models.Order, bool) {
	for _, o := range r.List() {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

func (r *OrderRepo) Append(order models.Order) error {
	orders := r.List()
	orders = append(orders, order)
	return writeList(r.store, keyOrders, orders)
}

// UpdateStatus sets the order's status. The caller validates the status
// value; transition order is not guarded here.
func (r *OrderRepo) UpdateStatus(id string, status models.OrderStatus) (models.Order, error) {
	orders := r.List()
	for i, o := range orders {
		if o.ID == id {
			orders[i].Status = status
			if err := writeList(r.store, keyOrders, orders); err != nil {
				return models.Order{}, err
			}
			return orders[i], nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}
