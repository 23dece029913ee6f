package checkout_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EShop-Commerce/eshop-storefront-gateway/models"
)

// GetCheckout godoc
// @Summary Get checkout state
// @Description Current checkout step plus the order summary from the cart
// @Tags Checkout
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CheckoutResponse}
// @Router /checkout [get]
func GetCheckout(c *gin.Context) {
	sess, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Checkout fetched", checkoutResponse(sess)))
}
