package auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EShop-Commerce/eshop-storefront-gateway/config"
	"github.com/EShop-Commerce/eshop-storefront-gateway/models"
)

// Logout godoc
// @Summary Logout
// @Description Clears the session's auth state atomically and removes the persisted authToken/userData pair. The cart is untouched.
// @Tags Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	sess, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	sess.Auth.ClearAuth()

	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()
	if err := ac.Storage.ClearAuth(ctx, sess.ID); err != nil {
		log.Printf("[auth.logout] failed to clear persisted session %s: %v", sess.ID, err)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", nil))
}
