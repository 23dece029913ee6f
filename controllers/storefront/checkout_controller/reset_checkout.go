package checkout_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EShop-Commerce/eshop-storefront-gateway/models"
)

// ResetCheckout godoc
// @Summary Reset checkout
// @Description Starts a fresh checkout flow after a confirmation
// @Tags Checkout
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CheckoutResponse}
// @Router /checkout/reset [post]
func ResetCheckout(c *gin.Context) {
	sess, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	sess.ResetCheckout()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Checkout reset", checkoutResponse(sess)))
}
