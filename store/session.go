package store

import (
	"context"
	"sync"

	"github.com/EShop-Commerce/eshop-storefront-gateway/models"
)

// Session bundles the state containers for one storefront session.
// Cart and checkout live only in memory; auth additionally hydrates
// from SessionStorage when the session is created.
type Session struct {
	ID   string
	Cart *CartStore
	Auth *AuthStore

	mu       sync.Mutex
	checkout models.CheckoutState
}

func newSession(ctx context.Context, id string, storage SessionStorage) *Session {
	return &Session{
		ID:       id,
		Cart:     NewCartStore(),
		Auth:     NewAuthStore(ctx, storage, id),
		checkout: models.CheckoutState{Step: models.CheckoutStepShipping},
	}
}

// Checkout returns the current checkout progress.
func (s *Session) Checkout() models.CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkout
}

// SubmitShipping records step 1 details and advances to payment.
func (s *Session) SubmitShipping(details models.ShippingDetails) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkout.Shipping = details
	s.checkout.Step = models.CheckoutStepPayment
}

// PlaceOrder records step 2 details and advances to confirmation. The
// caller clears the cart; collected payment details go nowhere.
func (s *Session) PlaceOrder(details models.PaymentDetails) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkout.Payment = details
	s.checkout.Step = models.CheckoutStepConfirmation
}

// ResetCheckout starts a fresh flow after a confirmation.
func (s *Session) ResetCheckout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkout = models.CheckoutState{Step: models.CheckoutStepShipping}
}
