package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hassandev/storefront-api/models"
	"github.com/hassandev/storefront-api/repository"
)

// GET /products?search=&category=&min_price=&max_price=
func GetProducts(products *repository.ProductRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := strings.ToLower(strings.TrimSpace(c.Query("search")))
		category := strings.TrimSpace(c.Query("category"))

		minPrice, hasMin := parsePrice(c.Query("min_price"))
		maxPrice, hasMax := parsePrice(c.Query("max_price"))

		all := products.List()
		filtered := make([]models.Product, 0, len(all))
		for _, p := range all {
			if search != "" &&
				!strings.Contains(strings.ToLower(p.Title), search) &&
				!strings.Contains(strings.ToLower(p.Description), search) {
				continue
			}
			if category != "" && strings.TrimSpace(p.Category) != category {
				continue
			}
			if hasMin && p.Price < minPrice {
				continue
			}
			if hasMax && p.Price > maxPrice {
				continue
			}
			filtered = append(filtered, p)
		}

		c.JSON(http.StatusOK, filtered)
	}
}

func parsePrice(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
