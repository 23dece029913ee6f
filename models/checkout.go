package models

// Checkout is a linear three-step flow. The step only ever moves
// forward; resetting starts a fresh flow.
const (
	CheckoutStepShipping     = 1
	CheckoutStepPayment      = 2
	CheckoutStepConfirmation = 3
)

// ShippingDetails are collected at step 1. They are held for the
// session but never transmitted upstream.
type ShippingDetails struct {
	FullName string `json:"full_name" binding:"required"`
	Address  string `json:"address" binding:"required"`
	City     string `json:"city" binding:"required"`
	State    string `json:"state" binding:"required"`
	Zip      string `json:"zip" binding:"required"`
}

// PaymentDetails are collected at step 2. Checkout is a simulated flow;
// no payment capture happens and the card data goes nowhere.
type PaymentDetails struct {
	CardNumber string `json:"card_number" binding:"required"`
	ExpDate    string `json:"exp_date" binding:"required"`
	CVV        string `json:"cvv" binding:"required"`
}

// CheckoutState is the per-session checkout progress.
type CheckoutState struct {
	Step     int             `json:"step"`
	Shipping ShippingDetails `json:"shipping"`
	Payment  PaymentDetails  `json:"-"`
}

// CheckoutResponse is the checkout page payload: current step plus the
// order summary derived from the cart.
type CheckoutResponse struct {
	Step    int         `json:"step"`
	Items   []CartItem  `json:"items"`
	Summary CartSummary `json:"summary"`
}
