package catalog

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CateringPlanner_Go/internal/domain"
	"github.com/osse101/CateringPlanner_Go/internal/metrics"
)

// cachedRecipesEntry wraps a recipe lookup result with version metadata
type cachedRecipesEntry struct {
	Version  string          `json:"version"`
	Recipes  []domain.Recipe `json:"recipes"`
	CachedAt time.Time       `json:"cached_at"`
}

// recipeCache caches recipe lookups by menu item set. Any catalog write clears it
// and advances the generation, so a lookup that read the repository before the
// write cannot store its result afterwards.
type recipeCache struct {
	mu         sync.Mutex
	generation uint64
	lru        *expirable.LRU[string, *cachedRecipesEntry]
}

func newRecipeCache(size int, ttl time.Duration) *recipeCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &recipeCache{
		lru: expirable.NewLRU[string, *cachedRecipesEntry](size, nil, ttl),
	}
}

func cacheKey(menuItemIDs []string) string {
	return strings.Join(menuItemIDs, ",")
}

// Get returns a copy of the cached recipes. Entries with a stale version are dropped.
func (c *recipeCache) Get(menuItemIDs []string) ([]domain.Recipe, bool) {
	key := cacheKey(menuItemIDs)
	entry, found := c.lru.Get(key)
	if !found {
		metrics.CatalogCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		metrics.CatalogCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()
		return nil, false
	}

	metrics.CatalogCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
	return cloneRecipes(entry.Recipes), true
}

// Generation identifies the cache contents between two Clear calls.
// Take it before reading the repository and hand it to Set.
func (c *recipeCache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// Set stores recipes read during generation gen. It reports false and stores
// nothing when the cache was cleared since.
func (c *recipeCache) Set(gen uint64, menuItemIDs []string, recipes []domain.Recipe) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return false
	}
	c.lru.Add(cacheKey(menuItemIDs), &cachedRecipesEntry{
		Version:  CacheSchemaVersion,
		Recipes:  cloneRecipes(recipes),
		CachedAt: time.Now(),
	})
	return true
}

// Clear removes all entries and starts a new generation
func (c *recipeCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.lru.Purge()
}

func (c *recipeCache) Len() int {
	return c.lru.Len()
}

func cloneRecipes(in []domain.Recipe) []domain.Recipe {
	out := make([]domain.Recipe, len(in))
	for i, r := range in {
		r.Ingredients = slices.Clone(r.Ingredients)
		out[i] = r
	}
	return out
}
