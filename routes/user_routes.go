package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/EShop-Commerce/eshop-storefront-gateway/controllers/storefront/order_controller"
	"github.com/EShop-Commerce/eshop-storefront-gateway/controllers/storefront/profile_controller"
	"github.com/EShop-Commerce/eshop-storefront-gateway/middleware"
)

// SetupUserRoutes wires the routes that need a signed-in session.
func SetupUserRoutes(router *gin.RouterGroup, orders *order_controller.OrderController,
	profile *profile_controller.ProfileController) {

	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("/profile", profile.GetProfile)
		user.PATCH("/profile", profile.UpdateProfile)

		user.GET("/orders", orders.GetOrders)
		user.GET("/orders/:id/invoice", orders.DownloadOrderInvoice)
	}
}
