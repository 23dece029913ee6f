package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/EShop-Commerce/eshop-storefront-gateway/models"
)

// ShopAPIClient talks to the upstream shop API that owns all durable
// storefront state. The gateway only ever reads catalog/order data and
// forwards sign-in and profile updates; it adds no retries and no
// caching of its own beyond the category cache.
type ShopAPIClient struct {
	baseURL string
	client  *http.Client
}

// NewShopAPIClient creates a client against the given base URL.
func NewShopAPIClient(baseURL string) *ShopAPIClient {
	return &ShopAPIClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// upstreamError is the upstream's {message} error body.
type upstreamError struct {
	Message string `json:"message"`
}

// Categories fetches the category list for the header menu.
func (s *ShopAPIClient) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.get(ctx, "/categories", nil, "", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Products fetches the product list. Query values (search, sort,
// category) are passed through untouched; the upstream owns filtering.
func (s *ShopAPIClient) Products(ctx context.Context, query url.Values) ([]models.Product, error) {
	var products []models.Product
	if err := s.get(ctx, "/products", query, "", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ProductByID fetches a single product for the detail page.
func (s *ShopAPIClient) ProductByID(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	if err := s.get(ctx, "/products/"+strconv.Itoa(id), nil, "", &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Orders fetches the order history, filtered by user ID.
func (s *ShopAPIClient) Orders(ctx context.Context, token string, userID int) ([]models.Order, error) {
	query := url.Values{}
	query.Set("user_id", strconv.Itoa(userID))

	var orders []models.Order
	if err := s.get(ctx, "/orders", query, token, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// OrderByID fetches one order with its items, for the invoice download.
// The upstream list endpoint is the source; it has no single-order
// route, so the gateway picks the order out of the filtered list.
func (s *ShopAPIClient) OrderByID(ctx context.Context, token string, userID, orderID int) (*models.Order, error) {
	orders, err := s.Orders(ctx, token, userID)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == orderID {
			return &orders[i], nil
		}
	}
	return nil, fmt.Errorf("order %d not found", orderID)
}

// SignIn forwards credentials upstream and returns the issued session.
func (s *ShopAPIClient) SignIn(ctx context.Context, req models.SignInRequest) (*models.AuthResponse, error) {
	var auth models.AuthResponse
	if err := s.send(ctx, http.MethodPost, "/login", "", req, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

// UpdateProfile PATCHes /update-profile with the bearer token and
// returns the updated user snapshot.
func (s *ShopAPIClient) UpdateProfile(ctx context.Context, token string, req models.UpdateProfileRequest) (*models.User, error) {
	var resp struct {
		User models.User `json:"user"`
	}
	if err := s.send(ctx, http.MethodPatch, "/update-profile", token, req, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (s *ShopAPIClient) get(ctx context.Context, path string, query url.Values, token string, out any) error {
	endpoint := s.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return s.do(req, token, out)
}

func (s *ShopAPIClient) send(ctx context.Context, method, path, token string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return s.do(req, token, out)
}

func (s *ShopAPIClient) do(req *http.Request, token string, out any) error {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("shop api unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr upstreamError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
			return fmt.Errorf("%s", apiErr.Message)
		}
		log.Printf("[shop-api] %s %s returned status %d", req.Method, req.URL.Path, resp.StatusCode)
		return fmt.Errorf("shop api error: status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
