package product_controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EShop-Commerce/eshop-storefront-gateway/models"
	"github.com/EShop-Commerce/eshop-storefront-gateway/services"
)

func newTestRouter(api *services.ShopAPIClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewProductController(api)

	router := gin.New()
	router.GET("/api/v1/store/products", controller.GetProducts)
	router.GET("/api/v1/store/products/:id", controller.GetProductByID)
	return router
}

func TestGetProductsPassesFiltersThrough(t *testing.T) {
	var gotQuery string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]models.Product{{ID: 1, Name: "Wireless Earbuds"}})
	}))
	defer upstream.Close()

	router := newTestRouter(services.NewShopAPIClient(upstream.URL))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/store/products?q=earbuds&sortBy=rating", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, gotQuery, "q=earbuds")
	assert.Contains(t, gotQuery, "sortBy=rating")
}

func TestGetProductByIDRejectsBadID(t *testing.T) {
	router := newTestRouter(services.NewShopAPIClient("http://unused"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/store/products/not-a-number", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGoneClientNeverReachesUpstream(t *testing.T) {
	var hits atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		json.NewEncoder(w).Encode([]models.Product{})
	}))
	defer upstream.Close()

	router := newTestRouter(services.NewShopAPIClient(upstream.URL))

	// a client that disconnected before the fetch started
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/store/products", nil).WithContext(ctx)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, int32(0), hits.Load(), "a cancelled caller must abort the upstream fetch")
}
