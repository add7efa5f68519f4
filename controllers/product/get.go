package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hassandev/storefront-api/models"
	"github.com/hassandev/storefront-api/repository"
)

const maxRelatedProducts = 4

// GET /products/:id
func GetProductByID(products *repository.ProductRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		product, ok := products.Find(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"product": product,
			"related": relatedProducts(products.List(), product),
		})
	}
}

// relatedProducts picks catalog entries sharing the product's trimmed
// category, excluding the product itself.
func relatedProducts(all []models.Product, product models.Product) []models.Product {
	category := strings.TrimSpace(product.Category)
	related := make([]models.Product, 0, maxRelatedProducts)
	for _, p := range all {
		if p.ID == product.ID {
			continue
		}
		if strings.TrimSpace(p.Category) != category {
			continue
		}
		related = append(related, p)
		if len(related) == maxRelatedProducts {
			break
		}
	}
	return related
}
