package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EShop-Commerce/eshop-storefront-gateway/models"
)

// GetCart godoc
// @Summary Get cart
// @Description Cart page data: items in insertion order, derived count and totals
// @Tags Cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Router /cart [get]
func GetCart(c *gin.Context) {
	sess, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched", cartResponse(sess)))
}
