package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hassandev/storefront-api/middleware"
	"github.com/hassandev/storefront-api/models"
	"github.com/hassandev/storefront-api/repository"
)

type TrackingStep struct {
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
	Current   bool   `json:"current"`
}

// TrackingTimeline derives the linear progress view from the order status.
// A cancelled order collapses to the placed step plus a cancelled marker.
func TrackingTimeline(order models.Order) []TrackingStep {
	if order.Status == models.OrderStatusCancelled {
		return []TrackingStep{
			{Label: "Order Placed", Completed: true},
			{Label: "Cancelled", Completed: true, Current: true},
		}
	}

	status := order.Status
	return []TrackingStep{
		{Label: "Order Placed", Completed: true},
		{
			Label:     "Processing",
			Completed: status == models.OrderStatusShipped || status == models.OrderStatusDelivered,
			Current:   status == models.OrderStatusProcessing,
		},
		{
			Label:     "Shipped",
			Completed: status == models.OrderStatusDelivered,
			Current:   status == models.OrderStatusShipped,
		},
		{
			Label:     "Delivered",
			Completed: status == models.OrderStatusDelivered,
			Current:   status == models.OrderStatusDelivered,
		},
	}
}

// GET /orders/:orderID/tracking
func GetOrderTrackingHandler(orders *repository.OrderRepo, isAdmin func() bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := middleware.SessionEmail(c)

		order, ok := orders.Find(c.Param("orderID"))
		if !ok || (order.User != email && !isAdmin()) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"order":    order,
			"timeline": TrackingTimeline(order),
		})
	}
}
