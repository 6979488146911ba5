package models

import (
	"fmt"
	"strconv"
)

// Weight units accepted on cart items
const (
	WeightUnitGram = "gram"
	WeightUnitKg   = "kg"
)

// CartLineItem represents a single purchasable selection in the cart.
// Identity is the composite (product, color, size, variant) key; two
// additions with the same key merge into one line.
type CartLineItem struct {
	ProductID  int     `json:"product_id"`
	VariantID  *int    `json:"variant_id,omitempty"`
	ColorID    *int    `json:"color_id,omitempty"`
	SizeID     *int    `json:"size_id,omitempty"`
	Title      string  `json:"title"`
	Thumbnail  string  `json:"thumbnail,omitempty"`
	Price      float64 `json:"price"`
	Discount   float64 `json:"discount,omitempty"`
	Quantity   int     `json:"quantity"`
	Weight     float64 `json:"weight"`
	WeightUnit string  `json:"weight_unit"`
}

// Key returns the composite identity key for the line item.
func (i *CartLineItem) Key() string {
	return CartItemKey(i.ProductID, i.ColorID, i.SizeID, i.VariantID)
}

// CartItemKey builds the composite key from its parts. Absent optional
// parts are encoded as "-" so that a missing ID and a zero ID stay distinct.
func CartItemKey(productID int, colorID, sizeID, variantID *int) string {
	return fmt.Sprintf("%d:%s:%s:%s", productID, optPart(colorID), optPart(sizeID), optPart(variantID))
}

func optPart(id *int) string {
	if id == nil {
		return "-"
	}
	return strconv.Itoa(*id)
}

// EffectiveUnitPrice returns the unit price with the discount applied
// when one is set.
func (i *CartLineItem) EffectiveUnitPrice() float64 {
	if i.Discount > 0 {
		return i.Price - i.Discount
	}
	return i.Price
}

// WeightGrams normalizes the item weight to grams.
func (i *CartLineItem) WeightGrams() float64 {
	if i.WeightUnit == WeightUnitKg {
		return i.Weight * 1000
	}
	return i.Weight
}

// CartItemRequest represents the request to add an item to the cart
type CartItemRequest struct {
	ProductID  int     `json:"product_id" binding:"required"`
	VariantID  *int    `json:"variant_id"`
	ColorID    *int    `json:"color_id"`
	SizeID     *int    `json:"size_id"`
	Title      string  `json:"title" binding:"required"`
	Thumbnail  string  `json:"thumbnail"`
	Price      float64 `json:"price" binding:"gte=0"`
	Discount   float64 `json:"discount" binding:"gte=0,ltefield=Price"`
	Quantity   int     `json:"quantity"`
	Weight     float64 `json:"weight" binding:"gte=0"`
	WeightUnit string  `json:"weight_unit" binding:"required,oneof=gram kg"`
}

// CartResponse represents the full cart with derived totals
type CartResponse struct {
	Items            []CartLineItem `json:"items"`
	TotalItems       int            `json:"total_items"`
	TotalPrice       float64        `json:"total_price"`
	TotalWeightGrams float64        `json:"total_weight_grams"`
}

// CartCountResponse represents the cart item count
type CartCountResponse struct {
	Count int `json:"count"`
}
