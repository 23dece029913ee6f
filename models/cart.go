package models

import "math"

// ShippingCost is the flat shipping rate applied to every order.
const ShippingCost = 10.0

// CartItem is a single line in the session cart. At most one entry per
// product ID exists in a cart; Quantity is always >= 1.
type CartItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Photo    string  `json:"photo"`
}

// AddCartItemRequest is the add-to-cart payload. Price allows zero so
// free products stay addable; negatives are rejected.
type AddCartItemRequest struct {
	ID       int     `json:"id" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"min=0"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
	Photo    string  `json:"photo"`
}

// UpdateQuantityRequest carries the new quantity for a cart line.
// Zero and negative values are accepted and clamp to 1 in the store.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartSummary holds the derived totals displayed on the cart and
// checkout pages.
type CartSummary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// CartResponse is the full cart page payload.
type CartResponse struct {
	Items   []CartItem  `json:"items"`
	Count   int         `json:"count"`
	Summary CartSummary `json:"summary"`
}

// Summarize computes subtotal/shipping/total for a set of cart items.
// Values are rounded to two decimals for display only.
func Summarize(items []CartItem) CartSummary {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	return CartSummary{
		Subtotal: roundCents(subtotal),
		Shipping: ShippingCost,
		Total:    roundCents(subtotal + ShippingCost),
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
