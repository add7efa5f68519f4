package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/hassandev/storefront-api/controllers/order"
	"github.com/hassandev/storefront-api/middleware"
)

// SetupOrderRoutes registers checkout, order history and tracking.
func SetupOrderRoutes(r *gin.Engine, d Deps) {
	gate := middleware.RequireSession(d.Auth)

	r.POST("/checkout", gate,
		orderControllers.CheckoutHandler(d.Orders, d.Carts, d.Config, d.OrderHub, d.Log))

	orders := r.Group("/orders")
	{
		// websocket endpoint for real-time order updates
		orders.GET("/ws", d.OrderHub.Handler)

		orders.GET("", gate, orderControllers.GetUserOrdersHandler(d.Orders))
		orders.GET("/:orderID", gate,
			orderControllers.GetOrderByIDHandler(d.Orders, d.Auth.IsAdmin))
		orders.GET("/:orderID/tracking", gate,
			orderControllers.GetOrderTrackingHandler(d.Orders, d.Auth.IsAdmin))
	}
}
