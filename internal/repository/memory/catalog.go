// Package memory provides in-process repository implementations used in
// tests and when the service runs with STORAGE=memory.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/osse101/CateringPlanner_Go/internal/domain"
)

// Catalog is an in-memory repository.Catalog. Items and recipes keep insertion order.
type Catalog struct {
	mu       sync.RWMutex
	items    []domain.MenuItem
	recipes  []domain.Recipe
	syncMeta map[string]domain.SyncMetadata
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{syncMeta: make(map[string]domain.SyncMetadata)}
}

func (c *Catalog) ListMenuItems(_ context.Context) ([]domain.MenuItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.MenuItem, len(c.items))
	for i, item := range c.items {
		out[i] = cloneMenuItem(item)
	}
	return out, nil
}

func (c *Catalog) GetMenuItem(_ context.Context, id string) (*domain.MenuItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.menuItemIndex(id)
	if i < 0 {
		return nil, domain.ErrMenuItemNotFound
	}
	item := cloneMenuItem(c.items[i])
	return &item, nil
}

func (c *Catalog) InsertMenuItem(_ context.Context, item *domain.MenuItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.menuItemIndex(item.ID) >= 0 {
		return domain.ErrDuplicateID
	}
	c.items = append(c.items, cloneMenuItem(*item))
	return nil
}

func (c *Catalog) UpdateMenuItem(_ context.Context, item *domain.MenuItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.menuItemIndex(item.ID)
	if i < 0 {
		return domain.ErrMenuItemNotFound
	}
	c.items[i] = cloneMenuItem(*item)
	return nil
}

func (c *Catalog) DeleteMenuItem(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.menuItemIndex(id)
	if i < 0 {
		return domain.ErrMenuItemNotFound
	}
	c.items = slices.Delete(c.items, i, i+1)
	c.recipes = slices.DeleteFunc(c.recipes, func(r domain.Recipe) bool {
		return r.MenuItemID == id
	})
	return nil
}

func (c *Catalog) ListRecipes(_ context.Context) ([]domain.Recipe, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Recipe, len(c.recipes))
	for i, r := range c.recipes {
		out[i] = cloneRecipe(r)
	}
	return out, nil
}

func (c *Catalog) GetRecipe(_ context.Context, id string) (*domain.Recipe, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.recipeIndex(id)
	if i < 0 {
		return nil, domain.ErrRecipeNotFound
	}
	r := cloneRecipe(c.recipes[i])
	return &r, nil
}

func (c *Catalog) GetRecipesByMenuItemIDs(_ context.Context, menuItemIDs []string) ([]domain.Recipe, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Recipe, 0)
	for _, r := range c.recipes {
		if slices.Contains(menuItemIDs, r.MenuItemID) {
			out = append(out, cloneRecipe(r))
		}
	}
	return out, nil
}

func (c *Catalog) InsertRecipe(_ context.Context, recipe *domain.Recipe) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.recipeIndex(recipe.ID) >= 0 {
		return domain.ErrDuplicateID
	}
	if c.menuItemIndex(recipe.MenuItemID) < 0 {
		return domain.ErrMenuItemNotFound
	}
	c.recipes = append(c.recipes, cloneRecipe(*recipe))
	return nil
}

func (c *Catalog) UpdateRecipe(_ context.Context, recipe *domain.Recipe) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.recipeIndex(recipe.ID)
	if i < 0 {
		return domain.ErrRecipeNotFound
	}
	if c.menuItemIndex(recipe.MenuItemID) < 0 {
		return domain.ErrMenuItemNotFound
	}
	c.recipes[i] = cloneRecipe(*recipe)
	return nil
}

func (c *Catalog) DeleteRecipe(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.recipeIndex(id)
	if i < 0 {
		return domain.ErrRecipeNotFound
	}
	c.recipes = slices.Delete(c.recipes, i, i+1)
	return nil
}

func (c *Catalog) GetSyncMetadata(_ context.Context, configName string) (*domain.SyncMetadata, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	meta, ok := c.syncMeta[configName]
	if !ok {
		return nil, nil
	}
	return &meta, nil
}

func (c *Catalog) UpsertSyncMetadata(_ context.Context, meta *domain.SyncMetadata) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.syncMeta[meta.ConfigName] = *meta
	return nil
}

func (c *Catalog) menuItemIndex(id string) int {
	return slices.IndexFunc(c.items, func(m domain.MenuItem) bool { return m.ID == id })
}

func (c *Catalog) recipeIndex(id string) int {
	return slices.IndexFunc(c.recipes, func(r domain.Recipe) bool { return r.ID == id })
}

func cloneMenuItem(m domain.MenuItem) domain.MenuItem {
	m.Allergens = slices.Clone(m.Allergens)
	return m
}

func cloneRecipe(r domain.Recipe) domain.Recipe {
	r.Ingredients = slices.Clone(r.Ingredients)
	return r
}
