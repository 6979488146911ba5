package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/rs/zerolog"

	"storefront-backend/internal/cart"
	"storefront-backend/internal/models"
)

// CartHandler handles cart-related requests. Each request hydrates a
// store from the signed cart cookie, applies the operation, and writes
// the updated blob back via Set-Cookie.
type CartHandler struct {
	cookies sessions.Store
	log     zerolog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cookies sessions.Store, log zerolog.Logger) *CartHandler {
	return &CartHandler{cookies: cookies, log: log}
}

// storeFor builds and hydrates the cart store for the current request.
func (h *CartHandler) storeFor(c *gin.Context) *cart.Store {
	persister := cart.NewCookiePersister(h.cookies, c.Request, c.Writer)
	store := cart.NewStore(persister, h.log)
	store.Hydrate()
	return store
}

// GetCart returns the current cart contents with derived totals
func (h *CartHandler) GetCart(c *gin.Context) {
	store := h.storeFor(c)
	c.JSON(http.StatusOK, store.Response())
}

// AddToCart adds an item to the cart, merging with an existing line
// when the composite key matches
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req models.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	store := h.storeFor(c)
	store.AddItem(&req)
	c.JSON(http.StatusCreated, store.Response())
}

// RemoveFromCart removes the item with the given composite key
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing cart item key"})
		return
	}

	store := h.storeFor(c)
	store.RemoveItem(key)
	c.JSON(http.StatusOK, store.Response())
}

// IncreaseQuantity increments the quantity of the item with the given key
func (h *CartHandler) IncreaseQuantity(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing cart item key"})
		return
	}

	store := h.storeFor(c)
	store.IncreaseItemQuantity(key)
	c.JSON(http.StatusOK, store.Response())
}

// DecreaseQuantity decrements the quantity of the item with the given
// key, floored at one
func (h *CartHandler) DecreaseQuantity(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing cart item key"})
		return
	}

	store := h.storeFor(c)
	store.DecreaseItemQuantity(key)
	c.JSON(http.StatusOK, store.Response())
}

// ClearCart removes all items from the cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	store := h.storeFor(c)
	store.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared successfully"})
}

// GetCartCount returns the number of items in the cart
func (h *CartHandler) GetCartCount(c *gin.Context) {
	store := h.storeFor(c)
	c.JSON(http.StatusOK, models.CartCountResponse{Count: store.TotalItems()})
}
