package config

import (
	"context"
	"log"
	"os"
	"time"
)

// ShopAPIURL returns the base URL of the upstream shop API.
// All catalog, order and profile data lives behind this URL; the
// gateway itself holds no durable state.
func ShopAPIURL() string {
	url := os.Getenv("SHOP_API_URL")
	if url == "" {
		url = "http://localhost:8080/api/v1"
		log.Println("⚠️ SHOP_API_URL not set, using local default")
	}
	return url
}

// ServerAddr returns the listen address for the gateway itself.
func ServerAddr() string {
	return ":" + getEnv("PORT", "8081")
}

// SessionCookieName is the cookie carrying the storefront session ID.
const SessionCookieName = "eshop_session"

// SessionTTL is how long persisted session auth data lives in Redis.
func SessionTTL() time.Duration {
	ttlStr := os.Getenv("SESSION_TTL")
	if ttlStr == "" {
		return 24 * time.Hour
	}
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		log.Printf("⚠️ invalid SESSION_TTL %q, using 24h", ttlStr)
		return 24 * time.Hour
	}
	return ttl
}

// WithTimeout bounds an upstream call at 10s while keeping the parent's
// cancellation, so a caller that goes away aborts its in-flight fetch.
func WithTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return WithCustomTimeout(parent, 10*time.Second)
}

func WithCustomTimeout(parent context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
