package productcontroller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hassandev/storefront-api/models"
	"github.com/hassandev/storefront-api/repository"
	"go.uber.org/zap"
)

// PUT /admin/products/:id
//
// Full-record overwrite. Cart, wishlist and order lines keep the snapshot
// taken when they were added.
func UpdateProduct(products *repository.ProductRepo, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if msg := input.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		updated := models.Product{
			ID:          id,
			Title:       strings.TrimSpace(input.Title),
			Price:       input.Price,
			Image:       input.Image,
			Images:      input.Images,
			Description: input.Description,
			Rating:      input.Rating,
			Category:    input.Category,
			InStock:     input.InStock,
		}
		if err := products.Update(updated); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		log.Infow("product updated", "id", id)
		c.JSON(http.StatusOK, updated)
	}
}
