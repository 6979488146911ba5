package database

import (
	"database/sql"
	"fmt"

	"storefront-backend/internal/models"
)

// Shipping setting keys
const (
	SettingPickupProvince = "pickup_province"
	SettingPickupDistrict = "pickup_district"
	SettingPickupWard     = "pickup_ward"
	SettingPickupAddress  = "pickup_address"
	SettingTransportMode  = "transport_mode"
	SettingDeliveryOption = "delivery_option"
)

type SettingsQueries struct {
	db *sql.DB
}

func NewSettingsQueries(db *sql.DB) *SettingsQueries {
	return &SettingsQueries{db: db}
}

// GetShippingSettings loads all shipping settings. Unconfigured keys
// come back as empty strings; defaults are applied for carrier options.
func (q *SettingsQueries) GetShippingSettings() (*models.ShippingSettings, error) {
	rows, err := q.db.Query(`SELECT key, value FROM shipping_settings`)
	if err != nil {
		return nil, fmt.Errorf("failed to get shipping settings: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan shipping setting: %w", err)
		}
		values[key] = value
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shipping settings: %w", err)
	}

	settings := &models.ShippingSettings{
		PickupProvince: values[SettingPickupProvince],
		PickupDistrict: values[SettingPickupDistrict],
		PickupWard:     values[SettingPickupWard],
		PickupAddress:  values[SettingPickupAddress],
		TransportMode:  values[SettingTransportMode],
		DeliveryOption: values[SettingDeliveryOption],
	}
	if settings.TransportMode == "" {
		settings.TransportMode = models.TransportModeRoad
	}
	if settings.DeliveryOption == "" {
		settings.DeliveryOption = models.DeliveryOptionNone
	}
	return settings, nil
}

// UpdateShippingSettings upserts the full settings set in one transaction.
func (q *SettingsQueries) UpdateShippingSettings(req *models.ShippingSettingsRequest) error {
	values := map[string]string{
		SettingPickupProvince: req.PickupProvince,
		SettingPickupDistrict: req.PickupDistrict,
		SettingPickupWard:     req.PickupWard,
		SettingPickupAddress:  req.PickupAddress,
	}
	if req.TransportMode != "" {
		values[SettingTransportMode] = req.TransportMode
	}
	if req.DeliveryOption != "" {
		values[SettingDeliveryOption] = req.DeliveryOption
	}

	tx, err := q.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin settings update: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO shipping_settings (key, value, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = CURRENT_TIMESTAMP
	`
	for key, value := range values {
		if _, err := tx.Exec(query, key, value); err != nil {
			return fmt.Errorf("failed to update setting %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit settings update: %w", err)
	}
	return nil
}
