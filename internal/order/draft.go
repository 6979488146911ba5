package order

import (
	"sync"

	"github.com/google/uuid"

	"storefront-backend/internal/models"
)

// Draft accumulates the order-in-progress for one checkout session: the
// cart totals plus the quoted shipping fee. The fee is nil until a quote
// succeeds and is cleared whenever a quote fails or becomes invalid.
type Draft struct {
	id uuid.UUID

	mu          sync.Mutex
	subtotal    float64
	weightGrams float64
	shippingFee *float64
}

// NewDraft creates an empty draft with a fresh identifier.
func NewDraft() *Draft {
	return &Draft{id: uuid.New()}
}

// ID returns the draft identifier.
func (d *Draft) ID() uuid.UUID {
	return d.id
}

// SetCartTotals records the current cart aggregates.
func (d *Draft) SetCartTotals(subtotal, weightGrams float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.subtotal = subtotal
	d.weightGrams = weightGrams
}

// SetShippingFee records a successfully quoted fee.
func (d *Draft) SetShippingFee(fee float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.shippingFee = &fee
}

// ClearShippingFee removes any previously quoted fee.
func (d *Draft) ClearShippingFee() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.shippingFee = nil
}

// ShippingFee returns the quoted fee, or nil when none is set.
func (d *Draft) ShippingFee() *float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shippingFee
}

// Response builds the draft snapshot with the composed total.
func (d *Draft) Response() models.OrderDraftResponse {
	d.mu.Lock()
	defer d.mu.Unlock()

	total := d.subtotal
	if d.shippingFee != nil {
		total += *d.shippingFee
	}
	return models.OrderDraftResponse{
		ID:               d.id,
		Subtotal:         d.subtotal,
		TotalWeightGrams: d.weightGrams,
		ShippingFee:      d.shippingFee,
		Total:            total,
	}
}
