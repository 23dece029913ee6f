package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EShop-Commerce/eshop-storefront-gateway/models"
)

// AddToCart godoc
// @Summary Add item to cart
// @Description Adds a product line; an existing product only grows in quantity
// @Tags Cart
// @Accept json
// @Produce json
// @Param item body models.AddCartItemRequest true "Cart item"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 400 {object} models.ApiResponse
// @Router /cart/items [post]
func AddToCart(c *gin.Context) {
	sess, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	sess.Cart.AddToCart(models.CartItem{
		ID:       req.ID,
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
		Photo:    req.Photo,
	})

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item added", cartResponse(sess)))
}
