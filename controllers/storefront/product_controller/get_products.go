package product_controller

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/EShop-Commerce/eshop-storefront-gateway/config"
	"github.com/EShop-Commerce/eshop-storefront-gateway/models"
	"github.com/EShop-Commerce/eshop-storefront-gateway/services"
)

type ProductController struct {
	API *services.ShopAPIClient
}

func NewProductController(api *services.ShopAPIClient) *ProductController {
	return &ProductController{API: api}
}

// GetProducts godoc
// @Summary Get product list
// @Description Product listing for the storefront; search/sort/category params pass through to the upstream
// @Tags Store
// @Produce json
// @Param q query string false "Search query"
// @Param category query string false "Category ID"
// @Param sortBy query string false "Sort by field" Enums(popularity, price-low-high, price-high-low, rating)
// @Success 200 {object} models.ApiResponse{data=[]models.Product}
// @Failure 502 {object} models.ApiResponse
// @Router /store/products [get]
func (pc *ProductController) GetProducts(c *gin.Context) {
	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	query := url.Values{}
	for _, key := range []string{"q", "category", "sortBy"} {
		if v := c.Query(key); v != "" {
			query.Set(key, v)
		}
	}

	products, err := pc.API.Products(ctx, query)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched", products))
}
