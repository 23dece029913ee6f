package order_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EShop-Commerce/eshop-storefront-gateway/config"
	"github.com/EShop-Commerce/eshop-storefront-gateway/middleware"
	"github.com/EShop-Commerce/eshop-storefront-gateway/models"
	"github.com/EShop-Commerce/eshop-storefront-gateway/services"
	"github.com/EShop-Commerce/eshop-storefront-gateway/store"
)

type OrderController struct {
	API *services.ShopAPIClient
}

func NewOrderController(api *services.ShopAPIClient) *OrderController {
	return &OrderController{API: api}
}

// signedInUser needs both halves of the auth state: the token alone is
// not enough to know whose history to fetch.
func signedInUser(c *gin.Context) (*store.Session, *models.User, string, bool) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session unavailable"))
		return nil, nil, "", false
	}
	user := sess.Auth.User()
	token := sess.Auth.Token()
	if user == nil || token == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Sign in required"))
		return nil, nil, "", false
	}
	return sess, user, token, true
}

// GetOrders godoc
// @Summary Get order history
// @Description Order history for the signed-in user, fetched fresh from the upstream on every request
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.Order}
// @Failure 401 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /user/orders [get]
func (oc *OrderController) GetOrders(c *gin.Context) {
	_, user, token, ok := signedInUser(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	orders, err := oc.API.Orders(ctx, token, user.ID)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Orders fetched", orders))
}
