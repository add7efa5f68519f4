package repository

import (
	"github.com/hassandev/storefront-api/models"
	"github.com/hassandev/storefront-api/store"
)

var sampleProducts = []models.Product{
	{
		ID:          "1",
		Title:       "Premium Leather Bag",
		Price:       299.99,
		Image:       "/images/products/bag1.jpg",
		Description: "High-quality leather bag perfect for everyday use",
		Rating:      4.5,
		Category:    "Bags",
		InStock:     true,
	},
	{
		ID:          "2",
		Title:       "Designer Handbag",
		Price:       199.99,
		Image:       "/images/products/bag2.jpg",
		Description: "Stylish designer handbag for special occasions",
		Rating:      4.2,
		Category:    "Bags",
		InStock:     true,
	},
	{
		ID:          "3",
		Title:       "Classic Leather Wallet",
		Price:       49.99,
		Image:       "/images/products/wallet1.jpg",
		Description: "Slim bifold wallet in full-grain leather",
		Rating:      4.7,
		Category:    "Accessories",
		InStock:     true,
	},
	{
		ID:          "4",
		Title:       "Canvas Travel Backpack",
		Price:       89.99,
		Image:       "/images/products/backpack1.jpg",
		Description: "Water-resistant backpack with padded laptop sleeve",
		Rating:      4.4,
		Category:    "Bags",
		InStock:     true,
	},
	{
		ID:          "5",
		Title:       "Silk Scarf",
		Price:       34.99,
		Image:       "/images/products/scarf1.jpg",
		Description: "Hand-printed silk scarf in seasonal colors",
		Rating:      4.1,
		Category:    "Accessories",
		InStock:     false,
	},
}

// SeedSampleCatalog writes the sample products when the catalog key has never
// been written. An existing catalog, even an empty one, is left alone.
func SeedSampleCatalog(s store.Store) error {
	if _, err := s.Get(keyProducts); err == nil {
		return nil
	}
	return writeList(s, keyProducts, sampleProducts)
}
