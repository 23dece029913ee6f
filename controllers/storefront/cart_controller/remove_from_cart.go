package cart_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/EShop-Commerce/eshop-storefront-gateway/models"
)

// RemoveFromCart godoc
// @Summary Remove item from cart
// @Description Deletes the cart line for a product; unknown products are a no-op
// @Tags Cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 400 {object} models.ApiResponse
// @Router /cart/items/{id} [delete]
func RemoveFromCart(c *gin.Context) {
	sess, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	sess.Cart.RemoveFromCart(id)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed", cartResponse(sess)))
}
