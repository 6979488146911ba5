package models

// ShippingSettings holds the operator-configured shipping defaults: the
// pickup (origin) address and the default carrier options.
type ShippingSettings struct {
	PickupProvince string `json:"pickup_province"`
	PickupDistrict string `json:"pickup_district"`
	PickupWard     string `json:"pickup_ward"`
	PickupAddress  string `json:"pickup_address"`
	TransportMode  string `json:"transport_mode"`
	DeliveryOption string `json:"delivery_option"`
}

// PickupOrigin returns the configured origin address, or nil when the
// minimum (province + district) has not been configured yet.
func (s *ShippingSettings) PickupOrigin() *Address {
	if s == nil || s.PickupProvince == "" || s.PickupDistrict == "" {
		return nil
	}
	return &Address{
		Province: s.PickupProvince,
		District: s.PickupDistrict,
		Ward:     s.PickupWard,
		Address:  s.PickupAddress,
	}
}

// ShippingSettingsRequest represents the admin request to update shipping settings
type ShippingSettingsRequest struct {
	PickupProvince string `json:"pickup_province" binding:"required"`
	PickupDistrict string `json:"pickup_district" binding:"required"`
	PickupWard     string `json:"pickup_ward"`
	PickupAddress  string `json:"pickup_address"`
	TransportMode  string `json:"transport_mode" binding:"omitempty,oneof=road air"`
	DeliveryOption string `json:"delivery_option" binding:"omitempty,oneof=none expedited"`
}
