package models

type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Images      []string `json:"images,omitempty"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating"`
	Category    string   `json:"category"`
	InStock     bool     `json:"inStock"`
}
