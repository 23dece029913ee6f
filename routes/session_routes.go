package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/EShop-Commerce/eshop-storefront-gateway/controllers/storefront/auth_controller"
	"github.com/EShop-Commerce/eshop-storefront-gateway/controllers/storefront/cart_controller"
	"github.com/EShop-Commerce/eshop-storefront-gateway/controllers/storefront/checkout_controller"
)

// SetupSessionRoutes wires the routes backed purely by session state:
// the cart, the checkout flow and sign-in/out. None of them require a
// signed-in user — guests cart and check out too.
func SetupSessionRoutes(router *gin.RouterGroup, auth *auth_controller.AuthController) {
	cart := router.Group("/cart")
	{
		cart.GET("", cart_controller.GetCart)
		cart.DELETE("", cart_controller.ClearCart)
		cart.POST("/items", cart_controller.AddToCart)
		cart.PATCH("/items/:id", cart_controller.UpdateQuantity)
		cart.DELETE("/items/:id", cart_controller.RemoveFromCart)
	}

	checkout := router.Group("/checkout")
	{
		checkout.GET("", checkout_controller.GetCheckout)
		checkout.POST("/shipping", checkout_controller.SubmitShipping)
		checkout.POST("/payment", checkout_controller.PlaceOrder)
		checkout.POST("/reset", checkout_controller.ResetCheckout)
	}

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signin", auth.SignIn)
		authGroup.POST("/logout", auth.Logout)
	}
}
