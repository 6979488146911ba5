package models

import "encoding/json"

// Delivery option constants
const (
	DeliveryOptionNone      = "none"
	DeliveryOptionExpedited = "expedited"
)

// Transport mode constants
const (
	TransportModeRoad = "road"
	TransportModeAir  = "air"
)

// Address represents one end of a shipment. Province and district are
// the minimum the carrier needs; ward and street address refine it.
type Address struct {
	Province string `json:"province"`
	District string `json:"district"`
	Ward     string `json:"ward,omitempty"`
	Address  string `json:"address,omitempty"`
}

// Complete reports whether the address is usable for fee calculation.
func (a *Address) Complete() bool {
	return a.Province != "" && a.District != ""
}

// ShippingFeeQuery is the input tuple for a carrier fee calculation.
type ShippingFeeQuery struct {
	Pickup         Address `json:"pickup"`
	Delivery       Address `json:"delivery"`
	WeightGrams    float64 `json:"weight_grams"`
	DeclaredValue  float64 `json:"declared_value"`
	DeliveryOption string  `json:"delivery_option"`
	TransportMode  string  `json:"transport_mode"`
}

// Valid reports whether the query may be sent to the carrier. Incomplete
// addresses or a zero weight must short-circuit to "no fee" instead.
func (q *ShippingFeeQuery) Valid() bool {
	return q.Pickup.Complete() && q.Delivery.Complete() && q.WeightGrams > 0
}

// CacheKey returns a deterministic serialization of the full query tuple,
// used to detect whether anything relevant changed since the last request.
func (q *ShippingFeeQuery) CacheKey() string {
	b, err := json.Marshal(q)
	if err != nil {
		return ""
	}
	return string(b)
}

// ShippingFeeResult is the canonical outcome of a fee calculation. All
// knowledge of the carrier's nested envelope stays in the shipping client;
// the rest of the code only ever sees this shape.
type ShippingFeeResult struct {
	Success bool    `json:"success"`
	Fee     float64 `json:"fee"`
	Reason  string  `json:"reason,omitempty"`
}
