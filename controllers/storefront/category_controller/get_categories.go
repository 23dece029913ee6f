package category_controller

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	category_cache "github.com/EShop-Commerce/eshop-storefront-gateway/cache"
	"github.com/EShop-Commerce/eshop-storefront-gateway/config"
	"github.com/EShop-Commerce/eshop-storefront-gateway/models"
	"github.com/EShop-Commerce/eshop-storefront-gateway/services"
)

type CategoryController struct {
	API *services.ShopAPIClient
}

func NewCategoryController(api *services.ShopAPIClient) *CategoryController {
	return &CategoryController{API: api}
}

// GetCategories godoc
// @Summary Get header categories
// @Description Category menu for the storefront header, cached for a short TTL
// @Tags Store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.Category}
// @Router /store/categories [get]
func (cc *CategoryController) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched", cc.Fetch(c.Request.Context())))
}

// Fetch returns the cached category list, refreshing it from upstream
// when stale. An upstream failure yields an empty menu, never an error;
// the header simply renders without categories.
func (cc *CategoryController) Fetch(parent context.Context) []models.Category {
	if categories, ok := category_cache.Get(); ok {
		return categories
	}

	ctx, cancel := config.WithTimeout(parent)
	defer cancel()

	categories, err := cc.API.Categories(ctx)
	if err != nil {
		log.Printf("[store.categories] fetch failed, serving empty menu: %v", err)
		return []models.Category{}
	}

	category_cache.Set(categories)
	return categories
}
