package models

// CartItem is a snapshot of a Product taken at the moment it was added.
// Later edits to the catalog never touch existing lines.
type CartItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description"`
	Category    string  `json:"category,omitempty"`
}

// NewCartItem copies the product fields into a fresh line with the given
// quantity.
func NewCartItem(p Product, quantity int) CartItem {
	return CartItem{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Image:       p.Image,
		Quantity:    quantity,
		Description: p.Description,
		Category:    p.Category,
	}
}
