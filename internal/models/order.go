package models

import "github.com/google/uuid"

// OrderDraftResponse is the checkout draft snapshot returned to the UI.
// ShippingFee is nil until a quote succeeds and is cleared again whenever
// a quote fails, so the client can never render a stale fee.
type OrderDraftResponse struct {
	ID               uuid.UUID `json:"id"`
	Subtotal         float64   `json:"subtotal"`
	TotalWeightGrams float64   `json:"total_weight_grams"`
	ShippingFee      *float64  `json:"shipping_fee"`
	Total            float64   `json:"total"`
}

// ShippingFeeRequest is the checkout request for a fee quote. The delivery
// address comes from the user; weight and declared value are derived from
// the cart, and the pickup address from operator settings.
type ShippingFeeRequest struct {
	Delivery       Address `json:"delivery"`
	DeliveryOption string  `json:"delivery_option"`
	TransportMode  string  `json:"transport_mode"`
}
