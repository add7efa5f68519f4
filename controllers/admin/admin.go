package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hassandev/storefront-api/models"
	"github.com/hassandev/storefront-api/repository"
)

// GET /admin/dashboard
//
// The back-office landing counts, computed from the flat lists on every read.
func GetDashboard(
	products *repository.ProductRepo,
	users *repository.UserRepo,
	orders *repository.OrderRepo,
	messages *repository.ContactRepo,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderList := orders.List()

		revenue := 0.0
		pending := 0
		for _, o := range orderList {
			if o.Status != models.OrderStatusCancelled {
				revenue += o.Total
			}
			if !o.Status.Terminal() {
				pending++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"products":       len(products.List()),
			"users":          len(users.List()),
			"orders":         len(orderList),
			"pending_orders": pending,
			"messages":       len(messages.List()),
			"revenue":        revenue,
		})
	}
}

// GET /admin/messages
func GetContactMessages(messages *repository.ContactRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		list := messages.List()
		if list == nil {
			list = []models.ContactMessage{}
		}
		c.JSON(http.StatusOK, list)
	}
}
