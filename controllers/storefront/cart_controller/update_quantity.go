package cart_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/EShop-Commerce/eshop-storefront-gateway/models"
)

// UpdateQuantity godoc
// @Summary Update line quantity
// @Description Sets a cart line's quantity, clamped to a minimum of 1; unknown products are a no-op
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param quantity body models.UpdateQuantityRequest true "New quantity"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 400 {object} models.ApiResponse
// @Router /cart/items/{id} [patch]
func UpdateQuantity(c *gin.Context) {
	sess, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	sess.Cart.UpdateQuantity(id, req.Quantity)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Quantity updated", cartResponse(sess)))
}
