package checkout_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EShop-Commerce/eshop-storefront-gateway/models"
)

// PlaceOrder godoc
// @Summary Place order
// @Description Records step 2 payment details, clears the cart and advances to confirmation. Checkout is simulated: no payment is captured and nothing is sent upstream, so there is no failure path to roll back.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param payment body models.PaymentDetails true "Payment details"
// @Success 200 {object} models.ApiResponse{data=models.CheckoutResponse}
// @Failure 400 {object} models.ApiResponse
// @Router /checkout/payment [post]
func PlaceOrder(c *gin.Context) {
	sess, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	var req models.PaymentDetails
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	sess.PlaceOrder(req)
	sess.Cart.ClearCart()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order placed", checkoutResponse(sess)))
}
