package checkout_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EShop-Commerce/eshop-storefront-gateway/models"
)

// SubmitShipping godoc
// @Summary Submit shipping details
// @Description Records step 1 shipping details and advances to payment. Details are held for the session only, never sent upstream.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param shipping body models.ShippingDetails true "Shipping details"
// @Success 200 {object} models.ApiResponse{data=models.CheckoutResponse}
// @Failure 400 {object} models.ApiResponse
// @Router /checkout/shipping [post]
func SubmitShipping(c *gin.Context) {
	sess, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	var req models.ShippingDetails
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	sess.SubmitShipping(req)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Shipping details saved", checkoutResponse(sess)))
}
