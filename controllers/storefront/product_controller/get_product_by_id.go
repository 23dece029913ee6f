package product_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/EShop-Commerce/eshop-storefront-gateway/config"
	"github.com/EShop-Commerce/eshop-storefront-gateway/models"
)

// GetProductByID godoc
// @Summary Get single product
// @Description Product detail page data
// @Tags Store
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse "Invalid product ID"
// @Failure 502 {object} models.ApiResponse
// @Router /store/products/{id} [get]
func (pc *ProductController) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	product, err := pc.API.ProductByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched", product))
}
