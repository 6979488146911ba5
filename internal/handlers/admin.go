package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/database"
	"storefront-backend/internal/models"
)

// AdminHandler exposes the operator shipping configuration
type AdminHandler struct {
	settingsQueries *database.SettingsQueries
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(settingsQueries *database.SettingsQueries) *AdminHandler {
	return &AdminHandler{settingsQueries: settingsQueries}
}

// GetShippingSettings returns the current shipping settings
func (h *AdminHandler) GetShippingSettings(c *gin.Context) {
	settings, err := h.settingsQueries.GetShippingSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get shipping settings", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateShippingSettings upserts the pickup address and carrier defaults
func (h *AdminHandler) UpdateShippingSettings(c *gin.Context) {
	var req models.ShippingSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.settingsQueries.UpdateShippingSettings(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update shipping settings", "details": err.Error()})
		return
	}

	settings, err := h.settingsQueries.GetShippingSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload shipping settings", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}
