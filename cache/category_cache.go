package category_cache

import (
	"sync"
	"time"

	"github.com/EShop-Commerce/eshop-storefront-gateway/models"
)

const TTL = 5 * time.Minute

// ── Header category menu cache ───────────────────────────────────────────────
// Every page renders the category menu, so the upstream list is cached
// for a short TTL instead of refetched per request. A failed refresh
// leaves the menu empty; it never surfaces an error to the page.

type entry struct {
	categories []models.Category
	fetchedAt  time.Time
}

var (
	mu    sync.RWMutex
	cache *entry
)

func Get() ([]models.Category, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if cache != nil && time.Since(cache.fetchedAt) < TTL {
		return cache.categories, true
	}
	return nil, false
}

func Set(categories []models.Category) {
	mu.Lock()
	defer mu.Unlock()
	cache = &entry{categories: categories, fetchedAt: time.Now()}
}

// ── Invalidate (tests and manual refresh) ────────────────────────────────────

func Invalidate() {
	mu.Lock()
	cache = nil
	mu.Unlock()
}
