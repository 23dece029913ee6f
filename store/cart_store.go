package store

import (
	"sync"

	"github.com/EShop-Commerce/eshop-storefront-gateway/models"
)

// CartStore is the single source of truth for a session's in-progress
// cart. Items keep insertion order and hold at most one entry per
// product ID. Every operation is total: unknown IDs are tolerated as
// no-ops, never errors.
type CartStore struct {
	mu    sync.Mutex
	items []models.CartItem
}

func NewCartStore() *CartStore {
	return &CartStore{}
}

// AddToCart merges the incoming item into the cart. When the product is
// already present only its quantity grows; the existing entry's other
// fields are kept as-is. New products append at the end.
func (s *CartStore) AddToCart(item models.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity += item.Quantity
			return
		}
	}
	s.items = append(s.items, item)
}

// RemoveFromCart deletes the entry with the given product ID. Removal
// preserves the order of the remaining items.
func (s *CartStore) RemoveFromCart(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the entry's quantity, clamped to a minimum of 1.
// Driving the quantity to zero never removes the line; removal is an
// explicit separate operation.
func (s *CartStore) UpdateQuantity(id, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			if quantity < 1 {
				quantity = 1
			}
			s.items[i].Quantity = quantity
			return
		}
	}
}

// ClearCart empties the cart. Called after an order is placed.
func (s *CartStore) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns a copy of the cart lines in insertion order.
func (s *CartStore) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// Count is the sum of quantities across all lines. Always computed from
// the items so it can never drift from them.
func (s *CartStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}
