package checkout_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EShop-Commerce/eshop-storefront-gateway/middleware"
	"github.com/EShop-Commerce/eshop-storefront-gateway/models"
	"github.com/EShop-Commerce/eshop-storefront-gateway/store"
)

func sessionOrAbort(c *gin.Context) (*store.Session, bool) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session unavailable"))
		return nil, false
	}
	return sess, true
}

// checkoutResponse pairs the flow step with the order summary derived
// from the live cart.
func checkoutResponse(sess *store.Session) models.CheckoutResponse {
	items := sess.Cart.Items()
	return models.CheckoutResponse{
		Step:    sess.Checkout().Step,
		Items:   items,
		Summary: models.Summarize(items),
	}
}
