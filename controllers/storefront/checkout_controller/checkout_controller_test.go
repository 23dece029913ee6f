package checkout_controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EShop-Commerce/eshop-storefront-gateway/middleware"
	"github.com/EShop-Commerce/eshop-storefront-gateway/models"
	"github.com/EShop-Commerce/eshop-storefront-gateway/store"
)

func newTestRouter() (*gin.Engine, *store.Manager) {
	gin.SetMode(gin.TestMode)
	manager := store.NewManager(nil)

	router := gin.New()
	api := router.Group("/api/v1")
	api.Use(middleware.SessionMiddleware(manager))

	checkout := api.Group("/checkout")
	checkout.GET("", GetCheckout)
	checkout.POST("/shipping", SubmitShipping)
	checkout.POST("/payment", PlaceOrder)
	checkout.POST("/reset", ResetCheckout)

	return router, manager
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, models.CheckoutResponse) {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "eshop_session", Value: "test-session"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	var state models.CheckoutResponse
	if resp.Data != nil {
		raw, err := json.Marshal(resp.Data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &state))
	}
	return w, state
}

func seedCart(t *testing.T, manager *store.Manager) *store.Session {
	t.Helper()
	sess := manager.Get(context.Background(), "test-session")
	sess.Cart.AddToCart(models.CartItem{ID: 1, Name: "Wireless Earbuds", Price: 10.00, Quantity: 2})
	sess.Cart.AddToCart(models.CartItem{ID: 2, Name: "Smart Speaker", Price: 15.00, Quantity: 1})
	return sess
}

func TestCheckoutStartsAtShipping(t *testing.T) {
	router, manager := newTestRouter()
	seedCart(t, manager)

	w, state := doJSON(t, router, http.MethodGet, "/api/v1/checkout", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.CheckoutStepShipping, state.Step)
	assert.Equal(t, 35.00, state.Summary.Subtotal)
	assert.Equal(t, 45.00, state.Summary.Total)
}

func TestFullCheckoutFlow(t *testing.T) {
	router, manager := newTestRouter()
	sess := seedCart(t, manager)

	w, state := doJSON(t, router, http.MethodPost, "/api/v1/checkout/shipping", models.ShippingDetails{
		FullName: "A Customer", Address: "1 Main St", City: "Springfield", State: "IL", Zip: "62701",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.CheckoutStepPayment, state.Step)

	w, state = doJSON(t, router, http.MethodPost, "/api/v1/checkout/payment", models.PaymentDetails{
		CardNumber: "4111111111111111", ExpDate: "12/30", CVV: "123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.CheckoutStepConfirmation, state.Step)

	// placing the order empties the cart
	assert.Empty(t, sess.Cart.Items())
	assert.Empty(t, state.Items)
	assert.Equal(t, 0.00, state.Summary.Subtotal)

	w, state = doJSON(t, router, http.MethodPost, "/api/v1/checkout/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.CheckoutStepShipping, state.Step)
}

func TestShippingValidation(t *testing.T) {
	router, manager := newTestRouter()
	sess := seedCart(t, manager)

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/checkout/shipping", gin.H{"full_name": "only a name"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.CheckoutStepShipping, sess.Checkout().Step, "a rejected payload must not advance the flow")
}

func TestPaymentValidationDoesNotClearCart(t *testing.T) {
	router, manager := newTestRouter()
	sess := seedCart(t, manager)

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/checkout/payment", gin.H{"card_number": "4111"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, sess.Cart.Items(), 2)
}
