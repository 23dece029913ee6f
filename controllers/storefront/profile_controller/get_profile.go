package profile_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EShop-Commerce/eshop-storefront-gateway/middleware"
	"github.com/EShop-Commerce/eshop-storefront-gateway/models"
	"github.com/EShop-Commerce/eshop-storefront-gateway/services"
	"github.com/EShop-Commerce/eshop-storefront-gateway/store"
)

type ProfileController struct {
	API *services.ShopAPIClient
}

func NewProfileController(api *services.ShopAPIClient) *ProfileController {
	return &ProfileController{API: api}
}

func sessionOrAbort(c *gin.Context) (*store.Session, bool) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session unavailable"))
		return nil, false
	}
	return sess, true
}

// GetProfile godoc
// @Summary Get profile
// @Description The session's user snapshot. Served from the AuthStore, not refetched from upstream.
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.User}
// @Failure 401 {object} models.ApiResponse
// @Router /user/profile [get]
func (pc *ProfileController) GetProfile(c *gin.Context) {
	sess, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	user := sess.Auth.User()
	if user == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Sign in required"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile fetched", user))
}
