package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/EShop-Commerce/eshop-storefront-gateway/models"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main runs a stub of the upstream shop API for local development.
// Usage: go run cmd/mockapi/main.go
// This is a standalone CLI tool, not part of the gateway itself.
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("E-SHOP - Mock Shop API")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	router := gin.Default()

	router.GET("/categories", func(c *gin.Context) {
		c.JSON(http.StatusOK, categories)
	})

	router.GET("/products", func(c *gin.Context) {
		c.JSON(http.StatusOK, filterProducts(c.Query("q"), c.Query("category")))
	})

	router.GET("/products/:id", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err == nil {
			for _, p := range products {
				if p.ID == id {
					c.JSON(http.StatusOK, p)
					return
				}
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
	})

	router.GET("/orders", func(c *gin.Context) {
		userID, _ := strconv.Atoi(c.Query("user_id"))
		var filtered []models.Order
		for _, o := range orders {
			if userID == 0 || o.UserID == userID {
				filtered = append(filtered, o)
			}
		}
		c.JSON(http.StatusOK, filtered)
	})

	router.POST("/login", func(c *gin.Context) {
		var req models.SignInRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		// any credentials pass; this is a dev fixture
		c.JSON(http.StatusOK, models.AuthResponse{
			User:  demoUser(req.Email),
			Token: "mock-token-" + strconv.FormatInt(time.Now().Unix(), 10),
		})
	})

	router.PATCH("/update-profile", func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Missing bearer token"})
			return
		}
		var req models.UpdateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		user := demoUser(req.Email)
		user.Name = req.Name
		c.JSON(http.StatusOK, gin.H{"user": user})
	})

	port := os.Getenv("MOCK_API_PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("✅ Mock shop API listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("❌ Mock API failed: %v", err)
	}
}

func demoUser(email string) models.User {
	return models.User{
		ID:        1,
		Name:      "Demo Customer",
		Email:     email,
		CreatedAt: "2024-07-01T00:00:00Z",
		UpdatedAt: "2024-07-15T00:00:00Z",
	}
}

func filterProducts(q, category string) []models.Product {
	categoryID, _ := strconv.Atoi(category)
	out := []models.Product{}
	for _, p := range products {
		if categoryID != 0 && p.CategoryID != categoryID {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(q)) {
			continue
		}
		out = append(out, p)
	}
	return out
}

var categories = []models.Category{
	{ID: 1, Name: "Audio", Description: "Headphones, earbuds and speakers"},
	{ID: 2, Name: "Wearables", Description: "Watches and trackers"},
	{ID: 3, Name: "Accessories", Description: "Keyboards and more"},
}

var products = []models.Product{
	{ID: 1, Name: "Wireless Earbuds", Price: 99.99, Rating: 4.5, Photo: "https://via.placeholder.com/300x300", CategoryID: 1},
	{ID: 2, Name: "Smart Speaker", Price: 79.99, Rating: 4.2, Photo: "https://via.placeholder.com/300x300", CategoryID: 1},
	{ID: 3, Name: "Fitness Tracker", Price: 49.99, Rating: 4.0, Photo: "https://via.placeholder.com/300x300", CategoryID: 2},
	{ID: 4, Name: "4K Action Camera", Price: 199.99, Rating: 4.7, Photo: "https://via.placeholder.com/300x300", CategoryID: 3},
	{ID: 5, Name: "Bluetooth Keyboard", Price: 59.99, Rating: 4.3, Photo: "https://via.placeholder.com/300x300", CategoryID: 3},
	{ID: 6, Name: "Noise-Cancelling Headphones", Price: 249.99, Rating: 4.8, Photo: "https://via.placeholder.com/300x300", CategoryID: 1},
}

var orders = []models.Order{
	{
		ID: 1234, OrderNumber: "ES-1234", UserID: 1, Status: "Delivered",
		Subtotal: 169.98, Shipping: 10, TotalAmount: 179.98,
		CreatedAt: time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
		Items: []models.OrderItem{
			{ProductID: 1, ProductName: "Wireless Earbuds", Price: 99.99, Quantity: 1, Subtotal: 99.99},
			{ProductID: 5, ProductName: "Bluetooth Keyboard", Price: 59.99, Quantity: 1, Subtotal: 59.99},
		},
	},
	{
		ID: 1235, OrderNumber: "ES-1235", UserID: 1, Status: "Shipped",
		Subtotal: 49.99, Shipping: 10, TotalAmount: 59.99,
		CreatedAt: time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
		Items: []models.OrderItem{
			{ProductID: 3, ProductName: "Fitness Tracker", Price: 49.99, Quantity: 1, Subtotal: 49.99},
		},
	},
}
