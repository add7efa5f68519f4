package orderControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hassandev/storefront-api/config"
	"github.com/hassandev/storefront-api/middleware"
	"github.com/hassandev/storefront-api/models"
	"github.com/hassandev/storefront-api/repository"
	"go.uber.org/zap"
)

// -------- Request Structs --------

type CheckoutRequest struct {
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zipCode"`
	Country       string `json:"country"`
	PaymentMethod string `json:"paymentMethod"`
	CardNumber    string `json:"cardNumber"`
	ExpiryDate    string `json:"expiryDate"`
	CVV           string `json:"cvv"`
	CardName      string `json:"cardName"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case "pending":
		return models.OrderStatusPending, nil
	case "processing":
		return models.OrderStatusProcessing, nil
	case "shipped":
		return models.OrderStatusShipped, nil
	case "delivered":
		return models.OrderStatusDelivered, nil
	case "cancelled":
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func (r CheckoutRequest) validate() string {
	required := map[string]string{
		"full name": r.FullName,
		"email":     r.Email,
		"phone":     r.Phone,
		"address":   r.Address,
		"city":      r.City,
		"state":     r.State,
		"zip code":  r.ZipCode,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return "Please fill in " + field
		}
	}
	if r.PaymentMethod == "card" {
		cardRequired := map[string]string{
			"card number": r.CardNumber,
			"expiry date": r.ExpiryDate,
			"cvv":         r.CVV,
			"card name":   r.CardName,
		}
		for field, value := range cardRequired {
			if strings.TrimSpace(value) == "" {
				return "Please fill in " + field
			}
		}
	}
	return ""
}

// -------- Core Logic --------

// Checkout snapshots the user's cart into a new order and clears the cart.
// The order write happens first: if it fails the cart is untouched, so a
// storage failure never destroys the cart.
func Checkout(
	orders *repository.OrderRepo,
	carts *repository.CartRepo,
	cfg config.Config,
	email string,
	req CheckoutRequest,
) (models.Order, error) {
	items := carts.Get(email)
	if len(items) == 0 {
		return models.Order{}, errors.New("cart is empty")
	}

	subtotal := carts.Total(email)
	tax := subtotal * cfg.TaxRate
	codFee := 0.0
	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "card"
	}
	if paymentMethod == "cod" {
		codFee = cfg.CODFee
	}

	country := req.Country
	if country == "" {
		country = "United States"
	}

	order := models.Order{
		ID:     repository.NewOrderID(),
		User:   email,
		Items:  items,
		Total:  subtotal + tax + codFee,
		Status: models.OrderStatusProcessing,
		Date:   time.Now(),
		ShippingAddress: models.ShippingAddress{
			FullName: req.FullName,
			Address:  req.Address,
			City:     req.City,
			State:    req.State,
			ZipCode:  req.ZipCode,
			Country:  country,
			Phone:    req.Phone,
		},
		PaymentMethod: paymentMethod,
	}

	if err := orders.Append(order); err != nil {
		return models.Order{}, err
	}
	if err := carts.Clear(email); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// -------- Handlers --------

// POST /checkout
func CheckoutHandler(
	orders *repository.OrderRepo,
	carts *repository.CartRepo,
	cfg config.Config,
	hub *Hub,
	log *zap.SugaredLogger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := middleware.SessionEmail(c)

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if msg := req.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		order, err := Checkout(orders, carts, cfg, email, req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		log.Infow("order placed", "order_id", order.ID, "user", email, "total", order.Total)
		hub.Broadcast(order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders — the current user's orders.
func GetUserOrdersHandler(orders *repository.OrderRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := middleware.SessionEmail(c)
		list := orders.ListByUser(email)
		if list == nil {
			list = []models.Order{}
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /orders/:orderID — own order, or any order for the admin.
func GetOrderByIDHandler(orders *repository.OrderRepo, isAdmin func() bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := middleware.SessionEmail(c)

		order, ok := orders.Find(c.Param("orderID"))
		if !ok || (order.User != email && !isAdmin()) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /admin/orders
func GetAllOrdersHandler(orders *repository.OrderRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		list := orders.List()
		if list == nil {
			list = []models.Order{}
		}
		c.JSON(http.StatusOK, list)
	}
}

// PUT /admin/orders/:orderID/status
//
// Admin-only. Status values are validated; transition order is not.
func UpdateOrderStatusHandler(orders *repository.OrderRepo, hub *Hub, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := orders.UpdateStatus(c.Param("orderID"), newStatus)
		if errors.Is(err, repository.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}

		log.Infow("order status updated", "order_id", order.ID, "status", newStatus)
		hub.Broadcast(order)
		c.JSON(http.StatusOK, order)
	}
}
