package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/EShop-Commerce/eshop-storefront-gateway/config"
	"github.com/EShop-Commerce/eshop-storefront-gateway/controllers/storefront/auth_controller"
	"github.com/EShop-Commerce/eshop-storefront-gateway/controllers/storefront/category_controller"
	"github.com/EShop-Commerce/eshop-storefront-gateway/controllers/storefront/home_controller"
	"github.com/EShop-Commerce/eshop-storefront-gateway/controllers/storefront/order_controller"
	"github.com/EShop-Commerce/eshop-storefront-gateway/controllers/storefront/product_controller"
	"github.com/EShop-Commerce/eshop-storefront-gateway/controllers/storefront/profile_controller"
	"github.com/EShop-Commerce/eshop-storefront-gateway/middleware"
	"github.com/EShop-Commerce/eshop-storefront-gateway/routes"
	"github.com/EShop-Commerce/eshop-storefront-gateway/services"
	"github.com/EShop-Commerce/eshop-storefront-gateway/store"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Redis holds persisted session auth data and rate limiter counters
	config.ConnectRedis()

	// Explicit wiring: storage → session manager → controllers. Session
	// hydration happens when the manager first sees a session ID, never
	// as a package-load side effect.
	storage := store.NewRedisStorage(config.RedisClient, config.SessionTTL())
	manager := store.NewManager(storage)
	shopAPI := services.NewShopAPIClient(config.ShopAPIURL())

	// Evict idle in-memory sessions once their cookie and Redis keys
	// would have expired anyway; otherwise the map grows per cookie
	// value with no bound.
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if swept := manager.Sweep(config.SessionTTL()); swept > 0 {
				log.Printf("[session] swept %d idle sessions", swept)
			}
		}
	}()

	categories := category_controller.NewCategoryController(shopAPI)
	home := home_controller.NewHomeController(shopAPI, categories)
	products := product_controller.NewProductController(shopAPI)
	orders := order_controller.NewOrderController(shopAPI)
	profile := profile_controller.NewProfileController(shopAPI)
	auth := auth_controller.NewAuthController(shopAPI, storage)

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(config.RedisClient, 300, time.Minute))
	api.Use(middleware.SessionMiddleware(manager))

	routes.SetupStorefrontRoutes(api, home, products, categories)
	routes.SetupSessionRoutes(api, auth)
	routes.SetupUserRoutes(api, orders, profile)

	addr := config.ServerAddr()
	log.Printf("✅ Storefront gateway listening on %s (upstream: %s)", addr, config.ShopAPIURL())
	if err := router.Run(addr); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
