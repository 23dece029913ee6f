package auth_controller

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EShop-Commerce/eshop-storefront-gateway/config"
	"github.com/EShop-Commerce/eshop-storefront-gateway/middleware"
	"github.com/EShop-Commerce/eshop-storefront-gateway/models"
	"github.com/EShop-Commerce/eshop-storefront-gateway/services"
	"github.com/EShop-Commerce/eshop-storefront-gateway/store"
)

type AuthController struct {
	API     *services.ShopAPIClient
	Storage store.SessionStorage
}

func NewAuthController(api *services.ShopAPIClient, storage store.SessionStorage) *AuthController {
	return &AuthController{API: api, Storage: storage}
}

func sessionOrAbort(c *gin.Context) (*store.Session, bool) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session unavailable"))
		return nil, false
	}
	return sess, true
}

// SignIn godoc
// @Summary Sign in
// @Description Forwards credentials to the upstream, then stores the issued user/token in the session's AuthStore and persists the authToken/userData pair for later hydration
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.SignInRequest true "Credentials"
// @Success 200 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse "Upstream rejection message"
// @Router /auth/signin [post]
func (ac *AuthController) SignIn(c *gin.Context) {
	sess, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	auth, err := ac.API.SignIn(ctx, req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, err.Error()))
		return
	}

	user := auth.User
	sess.Auth.SetUser(&user)
	sess.Auth.SetToken(auth.Token)

	// persist for hydration on the next process start; a write failure
	// only costs persistence, the in-memory session is already signed in
	userData, err := json.Marshal(auth.User)
	if err == nil {
		err = ac.Storage.SaveAuth(ctx, sess.ID, auth.Token, string(userData))
	}
	if err != nil {
		log.Printf("[auth.signin] failed to persist session %s: %v", sess.ID, err)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Signed in", auth))
}
