package cart

import (
	"encoding/json"
	"fmt"

	"storefront-backend/internal/models"
)

// Persister is the durable-store boundary for the cart. Load must
// tolerate missing or corrupt data by returning an empty cart.
type Persister interface {
	Load() ([]models.CartLineItem, error)
	Save(items []models.CartLineItem) error
	Clear() error
}

// cartSchemaVersion is the current persisted envelope version. Version 1
// predates item weights; see migrateEnvelope.
const cartSchemaVersion = 2

// cartEnvelope is the persisted representation of the cart.
type cartEnvelope struct {
	SchemaVersion int                   `json:"schema_version"`
	Items         []models.CartLineItem `json:"items"`
}

// encodeItems serializes the cart into the current envelope version.
func encodeItems(items []models.CartLineItem) (string, error) {
	b, err := json.Marshal(cartEnvelope{
		SchemaVersion: cartSchemaVersion,
		Items:         items,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode cart: %w", err)
	}
	return string(b), nil
}

// decodeItems parses a persisted blob and migrates old envelope versions
// forward before returning the items.
func decodeItems(payload string) ([]models.CartLineItem, error) {
	var envelope cartEnvelope
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	migrateEnvelope(&envelope)
	return envelope.Items, nil
}

// migrateEnvelope upgrades older persisted shapes in place. Version 0/1
// carts were written before items carried a weight, so missing weights
// default to zero grams and quantities are clamped to at least one.
func migrateEnvelope(envelope *cartEnvelope) {
	if envelope.SchemaVersion >= cartSchemaVersion {
		return
	}
	for idx := range envelope.Items {
		if envelope.Items[idx].WeightUnit == "" {
			envelope.Items[idx].WeightUnit = models.WeightUnitGram
		}
		if envelope.Items[idx].Weight < 0 {
			envelope.Items[idx].Weight = 0
		}
		if envelope.Items[idx].Quantity < 1 {
			envelope.Items[idx].Quantity = 1
		}
	}
	envelope.SchemaVersion = cartSchemaVersion
}
