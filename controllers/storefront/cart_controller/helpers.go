package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EShop-Commerce/eshop-storefront-gateway/middleware"
	"github.com/EShop-Commerce/eshop-storefront-gateway/models"
	"github.com/EShop-Commerce/eshop-storefront-gateway/store"
)

// sessionOrAbort pulls the storefront session from the context; a miss
// means the session middleware is not wired on this route.
func sessionOrAbort(c *gin.Context) (*store.Session, bool) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session unavailable"))
		return nil, false
	}
	return sess, true
}

// cartResponse builds the cart payload with its derived count and totals.
func cartResponse(sess *store.Session) models.CartResponse {
	items := sess.Cart.Items()
	return models.CartResponse{
		Items:   items,
		Count:   sess.Cart.Count(),
		Summary: models.Summarize(items),
	}
}
