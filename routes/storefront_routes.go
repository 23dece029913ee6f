package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/EShop-Commerce/eshop-storefront-gateway/controllers/storefront/category_controller"
	"github.com/EShop-Commerce/eshop-storefront-gateway/controllers/storefront/home_controller"
	"github.com/EShop-Commerce/eshop-storefront-gateway/controllers/storefront/product_controller"
)

// SetupStorefrontRoutes wires the public catalog pages. No auth needed;
// the session middleware still runs so the header can show cart counts.
func SetupStorefrontRoutes(router *gin.RouterGroup, home *home_controller.HomeController,
	products *product_controller.ProductController, categories *category_controller.CategoryController) {

	store := router.Group("/store")
	{
		store.GET("/home", home.GetHome)
		store.GET("/products", products.GetProducts)
		store.GET("/products/:id", products.GetProductByID)
		store.GET("/categories", categories.GetCategories)
	}
}
