package cart

import (
	"github.com/rs/zerolog"

	"storefront-backend/internal/models"
)

// Store holds the in-memory cart for one session and keeps it in sync
// with its Persister. The in-memory list is the source of truth: when
// persistence fails the mutation still applies and the failure is logged.
type Store struct {
	persister Persister
	log       zerolog.Logger
	items     []models.CartLineItem
	hydrated  bool
}

// NewStore creates a cart store backed by the given persister.
func NewStore(persister Persister, log zerolog.Logger) *Store {
	return &Store{
		persister: persister,
		log:       log.With().Str("component", "cart").Logger(),
	}
}

// Hydrate loads the persisted cart into memory. It only loads once;
// repeated calls are no-ops. A missing or corrupt blob resets the cart
// to empty instead of failing.
func (s *Store) Hydrate() {
	if s.hydrated {
		return
	}
	items, err := s.persister.Load()
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to load persisted cart, starting empty")
		items = nil
	}
	s.items = items
	s.hydrated = true
}

// AddItem adds an item to the cart. If an item with the same composite
// key already exists, only its quantity grows; the descriptive fields
// keep their first-written values so a stale re-add cannot clobber them.
func (s *Store) AddItem(req *models.CartItemRequest) {
	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	key := models.CartItemKey(req.ProductID, req.ColorID, req.SizeID, req.VariantID)
	for idx := range s.items {
		if s.items[idx].Key() == key {
			s.items[idx].Quantity += quantity
			s.persist()
			return
		}
	}

	s.items = append(s.items, models.CartLineItem{
		ProductID:  req.ProductID,
		VariantID:  req.VariantID,
		ColorID:    req.ColorID,
		SizeID:     req.SizeID,
		Title:      req.Title,
		Thumbnail:  req.Thumbnail,
		Price:      req.Price,
		Discount:   req.Discount,
		Quantity:   quantity,
		Weight:     req.Weight,
		WeightUnit: req.WeightUnit,
	})
	s.persist()
}

// RemoveItem removes the line item with the given composite key.
// Unknown keys are a no-op.
func (s *Store) RemoveItem(key string) {
	for idx := range s.items {
		if s.items[idx].Key() == key {
			s.items = append(s.items[:idx], s.items[idx+1:]...)
			s.persist()
			return
		}
	}
}

// IncreaseItemQuantity increments the quantity of the matching item by one.
func (s *Store) IncreaseItemQuantity(key string) {
	for idx := range s.items {
		if s.items[idx].Key() == key {
			s.items[idx].Quantity++
			s.persist()
			return
		}
	}
}

// DecreaseItemQuantity decrements the quantity of the matching item by
// one, floored at 1. Removal is only ever explicit via RemoveItem.
func (s *Store) DecreaseItemQuantity(key string) {
	for idx := range s.items {
		if s.items[idx].Key() == key {
			if s.items[idx].Quantity > 1 {
				s.items[idx].Quantity--
			}
			s.persist()
			return
		}
	}
}

// Clear empties the cart and drops the persisted blob in one step.
func (s *Store) Clear() {
	s.items = nil
	if err := s.persister.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("Failed to clear persisted cart")
	}
}

// Items returns the current line items in insertion order.
func (s *Store) Items() []models.CartLineItem {
	return s.items
}

// TotalPrice recomputes the cart total from the effective unit prices.
func (s *Store) TotalPrice() float64 {
	var total float64
	for idx := range s.items {
		total += s.items[idx].EffectiveUnitPrice() * float64(s.items[idx].Quantity)
	}
	return total
}

// TotalWeight recomputes the cart weight in grams.
func (s *Store) TotalWeight() float64 {
	var total float64
	for idx := range s.items {
		total += s.items[idx].WeightGrams() * float64(s.items[idx].Quantity)
	}
	return total
}

// TotalItems returns the summed quantity across all line items.
func (s *Store) TotalItems() int {
	var count int
	for idx := range s.items {
		count += s.items[idx].Quantity
	}
	return count
}

// Response builds the cart payload with derived totals.
func (s *Store) Response() models.CartResponse {
	items := s.items
	if items == nil {
		items = []models.CartLineItem{}
	}
	return models.CartResponse{
		Items:            items,
		TotalItems:       s.TotalItems(),
		TotalPrice:       s.TotalPrice(),
		TotalWeightGrams: s.TotalWeight(),
	}
}

func (s *Store) persist() {
	if err := s.persister.Save(s.items); err != nil {
		s.log.Warn().Err(err).Msg("Failed to persist cart, in-memory state kept")
	}
}
