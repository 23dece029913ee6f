package home_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EShop-Commerce/eshop-storefront-gateway/config"
	"github.com/EShop-Commerce/eshop-storefront-gateway/controllers/storefront/category_controller"
	"github.com/EShop-Commerce/eshop-storefront-gateway/models"
	"github.com/EShop-Commerce/eshop-storefront-gateway/services"
)

// featuredCount is how many products the landing page promotes.
const featuredCount = 3

type HomeController struct {
	API        *services.ShopAPIClient
	Categories *category_controller.CategoryController
}

func NewHomeController(api *services.ShopAPIClient, categories *category_controller.CategoryController) *HomeController {
	return &HomeController{API: api, Categories: categories}
}

// GetHome godoc
// @Summary Get landing page data
// @Description Featured products plus the category menu
// @Tags Store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.HomeResponse}
// @Router /store/home [get]
func (hc *HomeController) GetHome(c *gin.Context) {
	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	// The upstream has no featured flag; the first few products stand in.
	products, err := hc.API.Products(ctx, nil)
	if err != nil {
		log.Printf("[store.home] product fetch failed: %v", err)
		products = nil
	}
	if len(products) > featuredCount {
		products = products[:featuredCount]
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Home fetched", models.HomeResponse{
		FeaturedProducts: products,
		Categories:       hc.Categories.Fetch(c.Request.Context()),
	}))
}
