package profile_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EShop-Commerce/eshop-storefront-gateway/config"
	"github.com/EShop-Commerce/eshop-storefront-gateway/middleware"
	"github.com/EShop-Commerce/eshop-storefront-gateway/models"
)

// UpdateProfile godoc
// @Summary Update profile
// @Description Forwards the edit to the upstream PATCH /update-profile with the session's bearer token, then replaces the AuthStore's user snapshot. The token is untouched.
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body models.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} models.ApiResponse{data=models.User}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 422 {object} models.ApiResponse "Upstream validation message"
// @Router /user/profile [patch]
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	sess, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	token, ok := middleware.GetAuthTokenFromContext(c)
	if !ok {
		token = sess.Auth.Token()
	}
	if token == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Sign in required"))
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	user, err := pc.API.UpdateProfile(ctx, token, req)
	if err != nil {
		// the upstream's {message} is the inline error the page shows
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c, err.Error()))
		return
	}

	sess.Auth.SetUser(user)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile updated", user))
}
