package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EShop-Commerce/eshop-storefront-gateway/models"
)

func TestCategories(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/categories", r.URL.Path)
		json.NewEncoder(w).Encode([]models.Category{
			{ID: 1, Name: "Audio"},
			{ID: 2, Name: "Wearables"},
		})
	}))
	defer srv.Close()

	client := NewShopAPIClient(srv.URL)
	categories, err := client.Categories(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Audio", categories[0].Name)
}

func TestProductsPassesQueryThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "earbuds", r.URL.Query().Get("q"))
		assert.Equal(t, "price-low-high", r.URL.Query().Get("sortBy"))
		json.NewEncoder(w).Encode([]models.Product{{ID: 1, Name: "Wireless Earbuds", Price: 99.99}})
	}))
	defer srv.Close()

	query := url.Values{}
	query.Set("q", "earbuds")
	query.Set("sortBy", "price-low-high")

	client := NewShopAPIClient(srv.URL)
	products, err := client.Products(context.Background(), query)

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 99.99, products[0].Price)
}

func TestProductByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/7", r.URL.Path)
		json.NewEncoder(w).Encode(models.Product{ID: 7, Name: "Smart Speaker", Price: 79.99})
	}))
	defer srv.Close()

	client := NewShopAPIClient(srv.URL)
	product, err := client.ProductByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 7, product.ID)
}

func TestOrdersFiltersByUserAndSendsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("user_id"))
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]models.Order{{ID: 1234, Status: "Delivered", TotalAmount: 179.98}})
	}))
	defer srv.Close()

	client := NewShopAPIClient(srv.URL)
	orders, err := client.Orders(context.Background(), "tok-123", 3)

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Delivered", orders[0].Status)
}

func TestOrderByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Order{
			{ID: 1, OrderNumber: "ES-001"},
			{ID: 2, OrderNumber: "ES-002"},
		})
	}))
	defer srv.Close()

	client := NewShopAPIClient(srv.URL)

	order, err := client.OrderByID(context.Background(), "tok", 3, 2)
	require.NoError(t, err)
	assert.Equal(t, "ES-002", order.OrderNumber)

	_, err = client.OrderByID(context.Background(), "tok", 3, 99)
	assert.EqualError(t, err, "order 99 not found")
}

func TestSignIn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)

		var req models.SignInRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@x.com", req.Email)

		json.NewEncoder(w).Encode(models.AuthResponse{
			User:  models.User{ID: 1, Name: "A", Email: "a@x.com"},
			Token: "tok-abc",
		})
	}))
	defer srv.Close()

	client := NewShopAPIClient(srv.URL)
	auth, err := client.SignIn(context.Background(), models.SignInRequest{Email: "a@x.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "tok-abc", auth.Token)
	assert.Equal(t, 1, auth.User.ID)
}

func TestUpdateProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/update-profile", r.URL.Path)
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]models.User{
			"user": {ID: 1, Name: "New Name", Email: "new@x.com"},
		})
	}))
	defer srv.Close()

	client := NewShopAPIClient(srv.URL)
	user, err := client.UpdateProfile(context.Background(), "tok-abc",
		models.UpdateProfileRequest{Name: "New Name", Email: "new@x.com"})

	require.NoError(t, err)
	assert.Equal(t, "New Name", user.Name)
}

func TestUpstreamErrorMessageSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"message": "Email already taken"})
	}))
	defer srv.Close()

	client := NewShopAPIClient(srv.URL)
	_, err := client.UpdateProfile(context.Background(), "tok",
		models.UpdateProfileRequest{Name: "A", Email: "a@x.com"})

	assert.EqualError(t, err, "Email already taken")
}

func TestUpstreamErrorWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewShopAPIClient(srv.URL)
	_, err := client.Categories(context.Background())

	assert.EqualError(t, err, "shop api error: status 502")
}

func TestRequestContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	client := NewShopAPIClient(srv.URL)
	_, err := client.Categories(ctx)

	assert.Error(t, err, "a cancelled caller context must abort the fetch")
}
