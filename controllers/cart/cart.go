package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hassandev/storefront-api/middleware"
	"github.com/hassandev/storefront-api/models"
	"github.com/hassandev/storefront-api/repository"
)

type AddItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}

// GET /cart
func GetCart(carts *repository.CartRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := middleware.SessionEmail(c)
		items := carts.Get(email)
		if items == nil {
			items = []models.CartItem{}
		}
		c.JSON(http.StatusOK, gin.H{
			"items":    items,
			"count":    carts.Count(email),
			"subtotal": carts.Total(email),
		})
	}
}

// POST /cart
func AddToCart(carts *repository.CartRepo, products *repository.ProductRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := middleware.SessionEmail(c)

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, ok := products.Find(input.ProductID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if err := carts.Add(email, product, input.Quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Added to cart",
			"items":   carts.Get(email),
			"count":   carts.Count(email),
		})
	}
}

// PUT /cart/:product_id
func UpdateCartQuantity(carts *repository.CartRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := middleware.SessionEmail(c)
		productID := c.Param("product_id")

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// A quantity of zero or less drops the line.
		err := carts.UpdateQuantity(email, productID, input.Quantity)
		if errors.Is(err, repository.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items":    carts.Get(email),
			"subtotal": carts.Total(email),
		})
	}
}

// DELETE /cart/:product_id
func RemoveFromCart(carts *repository.CartRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := middleware.SessionEmail(c)

		if err := carts.Remove(email, c.Param("product_id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
	}
}

// DELETE /cart
func ClearCart(carts *repository.CartRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := middleware.SessionEmail(c)

		if err := carts.Clear(email); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
