package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hassandev/storefront-api/auth"
	"github.com/hassandev/storefront-api/config"
	orderControllers "github.com/hassandev/storefront-api/controllers/order"
	"github.com/hassandev/storefront-api/repository"
	"github.com/hassandev/storefront-api/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.NewMemoryStore()
	require.NoError(t, repository.SeedSampleCatalog(s))

	cfg := config.Config{
		AdminEmail:    "hassan@admin.panel",
		AdminPassword: "1234567890",
		TaxRate:       0.08,
		CODFee:        2.99,
	}
	users := repository.NewUserRepo(s)

	r := gin.New()
	SetupRoutes(r, Deps{
		Config:    cfg,
		Log:       zap.NewNop().Sugar(),
		Auth:      auth.NewManager(repository.NewSessionRepo(s), users, cfg),
		Users:     users,
		Products:  repository.NewProductRepo(s),
		Carts:     repository.NewCartRepo(s),
		Wishlists: repository.NewWishlistRepo(s),
		Orders:    repository.NewOrderRepo(s),
		Messages:  repository.NewContactRepo(s),
		OrderHub:  orderControllers.NewHub(),
	})
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestStorefrontFlow(t *testing.T) {
	r := newTestRouter(t)

	// Cart requires a session.
	w := doJSON(t, r, http.MethodGet, "/cart", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Sign up; new accounts are logged in right away.
	w = doJSON(t, r, http.MethodPost, "/auth/signup", map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Seeded catalog is browsable.
	w = doJSON(t, r, http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var products []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.NotEmpty(t, products)

	// Add the same product twice: one line, quantity 2.
	for i := 0; i < 2; i++ {
		w = doJSON(t, r, http.MethodPost, "/cart", map[string]any{"product_id": "1"})
		require.Equal(t, http.StatusOK, w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	cart := decode(t, w)
	assert.Equal(t, float64(2), cart["count"])
	assert.Len(t, cart["items"], 1)

	// Wishlist rejects the duplicate add.
	w = doJSON(t, r, http.MethodPost, "/wishlist", map[string]any{"product_id": "2"})
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPost, "/wishlist", map[string]any{"product_id": "2"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Checkout snapshots the cart into a Processing order and clears it.
	w = doJSON(t, r, http.MethodPost, "/checkout", map[string]string{
		"fullName":      "Alice Example",
		"email":         "alice@example.com",
		"phone":         "555-0100",
		"address":       "1 Main St",
		"city":          "Springfield",
		"state":         "IL",
		"zipCode":       "62704",
		"paymentMethod": "cod",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	order := decode(t, w)
	assert.Equal(t, "Processing", order["status"])
	orderID := order["id"].(string)

	w = doJSON(t, r, http.MethodGet, "/cart", nil)
	cart = decode(t, w)
	assert.Equal(t, float64(0), cart["count"])

	// Tracking is visible to the buyer.
	w = doJSON(t, r, http.MethodGet, "/orders/"+orderID+"/tracking", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// The admin back-office is closed to regular users.
	w = doJSON(t, r, http.MethodGet, "/admin/orders", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Admin logs in (the single session is replaced) and moves the order on.
	w = doJSON(t, r, http.MethodPost, "/auth/login", map[string]string{
		"email":    "hassan@admin.panel",
		"password": "1234567890",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, "/admin/orders/"+orderID+"/status", map[string]string{
		"status": "shipped",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Shipped", decode(t, w)["status"])

	w = doJSON(t, r, http.MethodPut, "/admin/orders/"+orderID+"/status", map[string]string{
		"status": "teleported",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactAndCategories(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/contact", map[string]string{
		"firstName": "Alice",
		"lastName":  "Example",
		"email":     "alice@example.com",
		"subject":   "Hello",
		"message":   "Great store",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/contact", map[string]string{"firstName": "Alice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var groups []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &groups))
	assert.NotEmpty(t, groups)

	w = doJSON(t, r, http.MethodGet, "/category-details?category=Bags", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/category-details?category=Nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLoginValidation(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/login", map[string]string{
		"email":    " ",
		"password": "x",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "x",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
