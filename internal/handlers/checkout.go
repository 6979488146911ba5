package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/rs/zerolog"

	"storefront-backend/internal/cart"
	"storefront-backend/internal/checkout"
	"storefront-backend/internal/middleware"
	"storefront-backend/internal/models"
)

// ShippingSettingsSource provides the operator-configured shipping
// defaults. Satisfied by database.SettingsQueries.
type ShippingSettingsSource interface {
	GetShippingSettings() (*models.ShippingSettings, error)
}

// CheckoutHandler drives the shipping-fee quoting flow and exposes the
// order draft.
type CheckoutHandler struct {
	cookies  sessions.Store
	settings ShippingSettingsSource
	manager  *checkout.Manager
	log      zerolog.Logger
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(cookies sessions.Store, settings ShippingSettingsSource, manager *checkout.Manager, log zerolog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		cookies:  cookies,
		settings: settings,
		manager:  manager,
		log:      log,
	}
}

// QuoteShippingFee builds the fee query from the hydrated cart, the
// operator pickup address, and the requested delivery address, then runs
// the quoting flow. An incomplete address or empty cart yields the idle
// state without calling the carrier.
func (h *CheckoutHandler) QuoteShippingFee(c *gin.Context) {
	var req models.ShippingFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No session found"})
		return
	}

	settings, err := h.settings.GetShippingSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load shipping settings", "details": err.Error()})
		return
	}

	persister := cart.NewCookiePersister(h.cookies, c.Request, c.Writer)
	store := cart.NewStore(persister, h.log)
	store.Hydrate()

	session := h.manager.Session(sessionID)
	session.Draft.SetCartTotals(store.TotalPrice(), store.TotalWeight())

	query := models.ShippingFeeQuery{
		Delivery:       req.Delivery,
		WeightGrams:    store.TotalWeight(),
		DeclaredValue:  store.TotalPrice(),
		DeliveryOption: settings.DeliveryOption,
		TransportMode:  settings.TransportMode,
	}
	if pickup := settings.PickupOrigin(); pickup != nil {
		query.Pickup = *pickup
	}
	if req.DeliveryOption != "" {
		query.DeliveryOption = req.DeliveryOption
	}
	if req.TransportMode != "" {
		query.TransportMode = req.TransportMode
	}

	snapshot := session.Quoter.Quote(c.Request.Context(), query)
	c.JSON(http.StatusOK, snapshot)
}

// GetOrderDraft returns the current order draft totals for the session
func (h *CheckoutHandler) GetOrderDraft(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No session found"})
		return
	}

	persister := cart.NewCookiePersister(h.cookies, c.Request, c.Writer)
	store := cart.NewStore(persister, h.log)
	store.Hydrate()

	session := h.manager.Session(sessionID)
	session.Draft.SetCartTotals(store.TotalPrice(), store.TotalWeight())

	c.JSON(http.StatusOK, session.Draft.Response())
}
