package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hassandev/storefront-api/repository"
	"go.uber.org/zap"
)

// DELETE /admin/products/:id
func DeleteProduct(products *repository.ProductRepo, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		if _, ok := products.Find(id); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if err := products.Delete(id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		log.Infow("product deleted", "id", id)
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
