package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EShop-Commerce/eshop-storefront-gateway/models"
)

// ClearCart godoc
// @Summary Clear cart
// @Description Empties the cart regardless of prior state
// @Tags Cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Router /cart [delete]
func ClearCart(c *gin.Context) {
	sess, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	sess.Cart.ClearCart()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart cleared", cartResponse(sess)))
}
